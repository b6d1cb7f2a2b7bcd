package uia

// AttributeID identifies a text attribute. Values match the UI Automation
// attribute identifiers.
type AttributeID int

const (
	AttrFontName          AttributeID = 40005
	AttrFontSize          AttributeID = 40006
	AttrFontWeight        AttributeID = 40007
	AttrIsItalic          AttributeID = 40014
	AttrAnnotationTypes   AttributeID = 40160
	AttrAnnotationObjects AttributeID = 40161
)

// PropertyID identifies an element property. Values match the UI Automation
// property identifiers.
type PropertyID int

const (
	PropControlType                  PropertyID = 30003
	PropName                         PropertyID = 30005
	PropAutomationID                 PropertyID = 30011
	PropRuntimeID                    PropertyID = 30000
	PropDescription                  PropertyID = 30159
	PropAnnotationTypeID             PropertyID = 30113
	PropAnnotationAuthor             PropertyID = 30115
	PropAnnotationDateTime           PropertyID = 30116
	PropIsAnnotationPatternAvailable PropertyID = 30118
)

// ControlTypeID identifies the control type of an element.
type ControlTypeID int

const (
	ControlTypeEdit     ControlTypeID = 50004
	ControlTypeImage    ControlTypeID = 50006
	ControlTypeListItem ControlTypeID = 50007
	ControlTypeList     ControlTypeID = 50008
	ControlTypeText     ControlTypeID = 50020
	ControlTypeCustom   ControlTypeID = 50025
	ControlTypeGroup    ControlTypeID = 50026
	ControlTypeDocument ControlTypeID = 50030
	ControlTypeHeader   ControlTypeID = 50034
	ControlTypeTable    ControlTypeID = 50036
)

// Annotation type identifiers, as reported through AttrAnnotationTypes and
// PropAnnotationTypeID.
const (
	AnnotationUnknown         = 60000
	AnnotationSpellingError   = 60001
	AnnotationGrammarError    = 60002
	AnnotationComment         = 60003
	AnnotationTrackChanges    = 60005
	AnnotationInsertionChange = 60011
	AnnotationDeletionChange  = 60012
	AnnotationMoveChange      = 60013
)

// Name returns the element's name property, or "".
func Name(e Element) string {
	return stringProp(e, PropName)
}

// AutomationID returns the element's automation id, or "".
func AutomationID(e Element) string {
	return stringProp(e, PropAutomationID)
}

// Description returns the element's description, or "".
func Description(e Element) string {
	return stringProp(e, PropDescription)
}

// RuntimeID returns the element's runtime id rendered as an opaque string,
// or "".
func RuntimeID(e Element) string {
	return stringProp(e, PropRuntimeID)
}

// ControlType returns the element's control type, or zero.
func ControlType(e Element) ControlTypeID {
	v, ok := e.Property(PropControlType)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case ControlTypeID:
		return t
	case int:
		return ControlTypeID(t)
	}
	return 0
}

// BoolProperty returns a boolean property value, defaulting to false.
func BoolProperty(e Element, id PropertyID) bool {
	v, ok := e.Property(id)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func stringProp(e Element, id PropertyID) string {
	v, ok := e.Property(id)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
