// Package providers implements the Completer interface over the completion
// backend.
//
// The backend is a locally hosted model served by Ollama or LM Studio through
// the OpenAI-compatible chat completion endpoint; OLLAMA_HOST overrides the
// default address. A single synchronous call carries the whole invocation.
//
// Rate-limit responses are retried with exponential back-off up to a fixed
// bound. Connection failures and timeouts surface as an unavailable error
// ([IsUnavailable]); credential rejections as an auth error ([IsAuthError]).
// Everything else fails the call immediately, with no silent retries.
//
// Use [New] to obtain a Completer by provider name and model string.
package providers
