package domain

// Guidance text is a fixed lookup keyed by (step, errorType), never freeform.
// The UI shows it next to the failure together with a retry action when the
// error is retryable.

var guidanceByStepAndType = map[Step]map[ErrorType]string{
	StepSummarization: {
		ErrTypeRateLimited:        "The AI service is rate limited. Wait a few minutes and retry the enrichment.",
		ErrTypeServiceUnavailable: "The AI service is temporarily unavailable. Retry the enrichment later.",
		ErrTypeTimeout:            "The AI service took too long to respond. Retry the enrichment later.",
		ErrTypeUnauthorized:       "The AI service rejected the configured credentials. Check the API key configuration.",
		ErrTypeInvalidInput:       "The bookmark has no content to summarize. Edit the bookmark content and retry.",
		ErrTypeMalformedResponse:  "The AI service returned an unreadable answer. Retrying is unlikely to help; report this bookmark.",
	},
	StepMediaDownload: {
		ErrTypeRateLimited:        "The download service is rate limited. Wait a few minutes and retry the enrichment.",
		ErrTypeServiceUnavailable: "The download service is temporarily unavailable. Retry the enrichment later.",
		ErrTypeTimeout:            "The media download timed out. Retry the enrichment later.",
		ErrTypeNotFound:           "The media was removed or made private by its owner. It cannot be downloaded.",
		ErrTypeInvalidInput:       "This media URL is not supported by the download service.",
		ErrTypePayloadTooLarge:    "The media file exceeds the size limit and was skipped.",
	},
	StepStorageUpload: {
		ErrTypeServiceUnavailable: "The storage service is temporarily unavailable. Retry the enrichment later.",
		ErrTypeTimeout:            "The storage upload timed out. Retry the enrichment later.",
		ErrTypeInvalidInput:       "The downloaded media payload was empty and could not be stored.",
	},
	StepDatabaseUpdate: {
		ErrTypeDatabase: "Saving the enrichment result failed. Retry the enrichment; if this persists, contact support.",
		ErrTypeTimeout:  "Saving the enrichment result timed out. Retry the enrichment later.",
	},
}

const (
	guidanceRetryable    = "A temporary problem occurred. Retry the enrichment later."
	guidanceNonRetryable = "This step could not be completed for this bookmark. Retrying will not help."
)

// GuidanceFor returns the fixed user-facing hint for a (step, errorType)
// pair, falling back to a generic hint matching the retry classification.
func GuidanceFor(step Step, typ ErrorType) string {
	if byType, ok := guidanceByStepAndType[step]; ok {
		if g, ok := byType[typ]; ok {
			return g
		}
	}
	if typ.Retryable() {
		return guidanceRetryable
	}
	return guidanceNonRetryable
}
