// Package llm provides the JSON completion clients that classify queries and
// fill format records.
//
// # Providers
//
// Client talks to an OpenRouter-compatible chat completion endpoint over
// plain HTTP. GeminiClient uses the Google GenAI SDK. New picks one from
// config.LLMConfig; both satisfy Completer, which is all dispatch depends on.
//
// # Retry Behaviour
//
// Both clients retry on HTTP 408/429/5xx errors and network timeouts with
// exponential backoff (base 1s, max 10s). Retry-After headers are honoured
// when the server sends them. Context cancellation aborts retries immediately.
//
// # Decoding
//
// DecodeJSON tolerates the usual model quirks: Markdown code fences and prose
// around the JSON object.
package llm
