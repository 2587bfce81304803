package mapping

// Dataset is the top-level mapping document: one dataset's variables and
// how each was mapped to an external ontology. It is immutable after load
// and replaced wholesale by a fresh load.
type Dataset struct {
	DatabaseName string              `json:"database_name,omitempty"`
	Variables    map[string]Variable `json:"variable_info,omitempty"`
}

// Variable describes one dataset column and its semantic mapping. Every
// field is optional; an absent field never makes the document invalid.
type Variable struct {
	Predicate            string        `json:"predicate,omitempty"`
	Class                string        `json:"class,omitempty"`
	LocalDefinition      string        `json:"local_definition,omitempty"`
	SchemaReconstruction []SchemaStep  `json:"schema_reconstruction,omitempty"`
	ValueMapping         *ValueMapping `json:"value_mapping,omitempty"`
}

// SchemaStep is one node in a variable's reconstructed ontological path,
// one step per mapping decision.
type SchemaStep struct {
	ClassLabel string `json:"class_label,omitempty"`
	Class      string `json:"class,omitempty"`
	Predicate  string `json:"predicate,omitempty"`
	// AestheticLabel is the human-facing category name. The first step's
	// label decides which display group the variable lands in.
	AestheticLabel string `json:"aesthetic_label,omitempty"`
}

// TermMapping maps one raw local value to an ontology class.
type TermMapping struct {
	TargetClass string `json:"target_class,omitempty"`
}

// Term is one local-value entry of a value mapping, in document order.
type Term struct {
	LocalValue string
	Mapping    TermMapping
}

// ValueMapping translates a dataset's raw local values to ontology terms.
// Terms keeps the order the keys appear in the JSON document so the viewer
// shows rows the way the producer wrote them. HasTerms records whether the
// "terms" object was present at all; an empty object still counts as a
// mapping and renders an empty table.
type ValueMapping struct {
	Terms    []Term
	HasTerms bool
}
