// Package llm provides the AI insight augmentation adapter. It supports
// multiple text-completion providers including OpenAI and Anthropic,
// with retry logic, rate limiting, response caching, and tolerant
// parsing that degrades to free text instead of failing a report.
package llm
