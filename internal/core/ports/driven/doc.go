// Package driven defines the outbound port interfaces: capabilities the
// core services need from the outside world (corpus storage, language
// segmentation, web search, page fetching, paraphrasing). Adapters under
// internal/adapters/driven implement them.
package driven
