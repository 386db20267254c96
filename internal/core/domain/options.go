package domain

// Opt is an optional value. The zero value is unset. Discriminating options
// distinguish "not provided" from a provided zero value, so a plain field is
// not enough.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a set Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the value if set, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Options carries the per-invocation settings that select and configure a
// build target. It is typically populated from parsed command-line arguments.
//
// TaskArg, MergeImports and Reason participate in build target resolution as
// discriminating options; they are optional so that callers can distinguish
// an omitted option from an explicit zero value.
type Options struct {
	Task         string
	TaskArg      Opt[string]
	MergeImports Opt[bool]
	Reason       Opt[bool]

	ConfigFile  string
	Force       bool
	Quiet       bool
	NoDefExpand bool
	ReleaseDate string
	InputData   string
	FileOut     string
	SearchOnts  []string
}

// Discriminating option keys recognized by Discriminant.
const (
	DiscTaskArg      = "taskarg"
	DiscMergeImports = "merge_imports"
	DiscReason       = "reason"
)

// Discriminant returns the value of the named discriminating option and
// whether it is set. Unknown keys report as unset.
func (o *Options) Discriminant(key string) (any, bool) {
	switch key {
	case DiscTaskArg:
		v, ok := o.TaskArg.Get()
		return v, ok
	case DiscMergeImports:
		v, ok := o.MergeImports.Get()
		return v, ok
	case DiscReason:
		v, ok := o.Reason.Get()
		return v, ok
	default:
		return nil, false
	}
}
