package wordfields

import (
	"strings"

	"github.com/tsawler/wordfields/fields"
	"github.com/tsawler/wordfields/uia"
)

// pageAutomationIDPrefix marks the wrapper elements Word emits per page;
// the trailing segment of the automation id is the page number.
const pageAutomationIDPrefix = "UIA_AutomationId_Word_Page_"

// controlAttrsFor builds the control attributes for an element as seen
// from a fetched range, including the Word-specific corrections.
func controlAttrsFor(el uia.Element, bounds uia.TextRange) *fields.ControlAttrs {
	attrs := &fields.ControlAttrs{
		Role:        roleFor(uia.ControlType(el)),
		RuntimeID:   uia.RuntimeID(el),
		Name:        uia.Name(el),
		Description: uia.Description(el),
	}
	attrs.StartOfNode = true
	attrs.EndOfNode = true
	if tr := el.TextRange(); tr != nil && bounds != nil {
		attrs.StartOfNode = tr.CompareEndpoints(uia.EndpointStart, bounds, uia.EndpointStart) >= 0
		attrs.EndOfNode = tr.CompareEndpoints(uia.EndpointEnd, bounds, uia.EndpointEnd) <= 0
	}
	applyWordFixups(attrs, el)
	return attrs
}

// applyWordFixups corrects the control attributes Word reports wrongly or
// unhelpfully.
func applyWordFixups(attrs *fields.ControlAttrs, el uia.Element) {
	if attrs.Role == fields.RoleUnknown {
		// Footnote and endnote containers surface with an unknown role;
		// force editable text so their content is presented.
		attrs.Role = fields.RoleEditableText
	}
	autoID := uia.AutomationID(el)
	controlType := uia.ControlType(el)
	name := uia.Name(el)
	switch {
	case strings.HasPrefix(autoID, pageAutomationIDPrefix):
		attrs.PageNumber = autoID[strings.LastIndexByte(autoID, '_')+1:]
	case controlType == uia.ControlTypeGroup && name != "":
		attrs.Role = fields.RoleEmbeddedObject
		attrs.AlwaysReportName = true
	case controlType == uia.ControlTypeCustom && name != "":
		// Footnote and endnote identifiers.
		attrs.Content = name
		attrs.Role = fields.RoleLink
	}
	if attrs.Role == fields.RoleList || attrs.Role == fields.RoleEditableText {
		attrs.AddState(fields.StateReadonly)
		if attrs.Role == fields.RoleList {
			// Stay compatible with the older object-model implementation:
			// don't expose lists as lists, which suppresses announcement
			// of entering and exiting them. Bullets and numbering are
			// still announced.
			attrs.Role = fields.RoleEditableText
		}
	}
	if attrs.Role == fields.RoleGraphic {
		// Label graphics with the description before the name, as the
		// name tends to be auto-generated ("rectangle").
		switch {
		case attrs.Description != "":
			attrs.Content = attrs.Description
			attrs.Description = ""
		case attrs.Name != "":
			attrs.Content = attrs.Name
			attrs.Name = ""
		}
	}
}

// roleFor maps host control types onto renderer roles.
func roleFor(ct uia.ControlTypeID) string {
	switch ct {
	case uia.ControlTypeEdit:
		return fields.RoleEditableText
	case uia.ControlTypeImage:
		return fields.RoleGraphic
	case uia.ControlTypeListItem:
		return fields.RoleListItem
	case uia.ControlTypeList:
		return fields.RoleList
	case uia.ControlTypeText:
		return fields.RoleText
	case uia.ControlTypeGroup:
		return fields.RoleGrouping
	case uia.ControlTypeDocument:
		return fields.RoleDocument
	case uia.ControlTypeHeader:
		return fields.RoleHeader
	case uia.ControlTypeTable:
		return fields.RoleTable
	}
	return fields.RoleUnknown
}
