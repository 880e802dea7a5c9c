package spirv

// Options configures a Module's pluggable collaborators and target
// version, mirroring the teacher's Options/DefaultOptions convention.
type Options struct {
	// Version is the SPIR-V version the Module targets. Controls both the
	// header word and (per spec §4.6 item 6) which storage classes are
	// included in an entry point's finalized global interface.
	Version Version

	// Logger receives info/warning/error/fatal diagnostics. Defaults to a
	// no-op sink when nil.
	Logger Logger

	// Allocator sizes the Module's internal arenas. Defaults to
	// DefaultAllocator when nil.
	Allocator Allocator

	// Inferer derives result types for arithmetic/constructor
	// instructions that don't specify one explicitly. Defaults to
	// DefaultResultTypeInferer when nil.
	Inferer ResultTypeInferer
}

// DefaultOptions returns sensible defaults: SPIR-V 1.3, a no-op logger, the
// default allocator, and the default result-type inferer.
func DefaultOptions() Options {
	return Options{
		Version:   Version1_3,
		Logger:    noopLogger{},
		Allocator: DefaultAllocator{},
		Inferer:   DefaultResultTypeInferer,
	}
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
	if o.Allocator == nil {
		o.Allocator = DefaultAllocator{}
	}
	if o.Inferer == nil {
		o.Inferer = DefaultResultTypeInferer
	}
	if o.Version == (Version{}) {
		o.Version = Version1_3
	}
	return o
}
