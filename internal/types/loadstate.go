package types

// LoadKind tags the lifecycle phase of the initial lead import.
type LoadKind int

const (
	LoadIdle LoadKind = iota
	LoadLoading
	LoadLoaded
	LoadError
)

// LoadState is a tagged union describing the one-shot seed import. Message is
// only meaningful when Kind is LoadError; the struct-with-tag shape keeps
// illegal combinations (e.g. "loaded with error") unrepresentable.
type LoadState struct {
	Kind    LoadKind
	Message string
}

// LoadStateIdle returns the initial, not-yet-started state.
func LoadStateIdle() LoadState { return LoadState{Kind: LoadIdle} }

// LoadStateLoading returns the in-progress state.
func LoadStateLoading() LoadState { return LoadState{Kind: LoadLoading} }

// LoadStateLoaded returns the successful terminal state.
func LoadStateLoaded() LoadState { return LoadState{Kind: LoadLoaded} }

// LoadStateError returns the failed terminal state carrying a user-facing
// message.
func LoadStateError(message string) LoadState {
	return LoadState{Kind: LoadError, Message: message}
}

// Terminal reports whether the import lifecycle has finished; the import is
// one-shot, so a terminal state is never left automatically.
func (s LoadState) Terminal() bool {
	return s.Kind == LoadLoaded || s.Kind == LoadError
}

func (k LoadKind) String() string {
	switch k {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadError:
		return "error"
	}
	return "unknown"
}
