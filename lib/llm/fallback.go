package llm

import (
	"context"
	"log"
)

// FallbackAnalyzer wraps an Analyzer and absorbs provider failures into the
// neutral default verdict, so workflow call sites never special-case
// provider downtime. Caption generation is NOT wrapped: content errors
// must surface to the caller.
type FallbackAnalyzer struct {
	Inner Analyzer
}

// AnalyzeOne returns the inner verdict, or the default on provider error
func (f *FallbackAnalyzer) AnalyzeOne(ctx context.Context, imageURL string) (*Analysis, error) {
	analysis, err := f.Inner.AnalyzeOne(ctx, imageURL)
	if err != nil {
		log.Printf("Warning: vision analysis failed, using default result: %v", err)
		fallback := DefaultAnalysis()
		return &fallback, nil
	}
	return analysis, nil
}

// AnalyzeBatch returns the inner result, or a default verdict per image on
// provider error
func (f *FallbackAnalyzer) AnalyzeBatch(ctx context.Context, imageURLs []string) (*BatchAnalysis, error) {
	batch, err := f.Inner.AnalyzeBatch(ctx, imageURLs)
	if err == nil {
		return batch, nil
	}

	log.Printf("Warning: batch vision analysis failed, using default results: %v", err)

	fallback := &BatchAnalysis{
		PerImage:  make([]Analysis, len(imageURLs)),
		MeanScore: DefaultAnalysis().Score,
		Summary:   "Analysis is temporarily unavailable; photos were accepted with a neutral score.",
	}
	for i := range fallback.PerImage {
		fallback.PerImage[i] = DefaultAnalysis()
	}

	return fallback, nil
}
