// Package services implements the retrieval pipeline: local corpus search,
// the relevance gate, the web fallback, and the answering orchestrator that
// ties them together.
package services
