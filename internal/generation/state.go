package generation

// State tracks the pipeline through its single forward-only sequence.
// There are no retry or backward transitions; any step failure lands
// in StateFailed and aborts the remaining steps.
type State int

const (
	StateIdle State = iota
	StateBrandExtracted
	StateCopyTranscribed
	StateSectionsStructured
	StatePromptAssembled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBrandExtracted:
		return "brand_extracted"
	case StateCopyTranscribed:
		return "copy_transcribed"
	case StateSectionsStructured:
		return "sections_structured"
	case StatePromptAssembled:
		return "prompt_assembled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
