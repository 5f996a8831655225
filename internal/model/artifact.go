package model

// Kind categorizes the role a source file plays under the project's
// directory convention.
type Kind string

// Known artifact kinds.
const (
	KindModel           Kind = "model"
	KindController      Kind = "controller"
	KindHelper          Kind = "helper"
	KindLib             Kind = "lib"
	KindUnitTest        Kind = "unit_test"
	KindFunctionalTest  Kind = "functional_test"
	KindHelperTest      Kind = "helper_test"
	KindRspecModel      Kind = "rspec_model"
	KindRspecController Kind = "rspec_controller"
	KindRspecHelper     Kind = "rspec_helper"
)

// ClassDir binds a kind to the directory prefix whose class files it
// classifies. Matching is first-match-wins over the configured order, so
// more specific prefixes must precede the prefixes they contain
// ("test/unit/helpers/" before "test/unit/").
type ClassDir struct {
	Kind   Kind   `yaml:"kind"`
	Prefix string `yaml:"prefix"`
}

// Companion binds a kind to a printf-style path template taking the
// decamelized controller name. Companions are renamed together with their
// controller; a missing companion file is skipped, not an error.
type Companion struct {
	Kind     Kind   `yaml:"kind"`
	Template string `yaml:"template"`
}

// ClassifiedFile pairs a project file with the artifact it defines.
type ClassifiedFile struct {
	Path   Path
	Kind   Kind
	Symbol Symbol
}
