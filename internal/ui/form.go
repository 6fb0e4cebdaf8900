//go:build linux
// +build linux

package ui

import (
	"strings"

	"lazyufw/internal/rules"
	"lazyufw/internal/ufw"
	"lazyufw/internal/validation"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldAction formField = iota
	fieldDirection
	fieldProtocol
	fieldPort
	fieldAddress
	fieldService
	fieldNote
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Action",
	"Direction",
	"Protocol",
	"Port",
	"From/To IP",
	"Service",
	"Note",
}

// ruleForm is one interactive rule-editing session. It is created fresh per
// add or edit and discarded on commit or cancel; nothing carries over.
type ruleForm struct {
	editing   bool
	ruleIndex int

	actionIdx    int
	directionIdx int
	protocolIdx  int

	focus  formField
	inputs map[formField]textinput.Model
}

func newRuleForm() ruleForm {
	f := ruleForm{
		inputs: make(map[formField]textinput.Model, 4),
	}

	limits := map[formField]int{
		fieldPort:    rules.MaxPortLen,
		fieldAddress: rules.MaxAddressLen,
		fieldService: rules.MaxServiceLen,
		fieldNote:    rules.MaxNoteLen,
	}
	for field, limit := range limits {
		ti := textinput.New()
		ti.CharLimit = limit
		ti.Width = limit + 1
		ti.Prompt = ""
		f.inputs[field] = ti
	}

	f.setValue(fieldAddress, rules.AnyAddress)
	f.focus = fieldAction
	return f
}

// formForRule seeds an edit session from an existing rule's description and
// its stored annotations. The protocol is never recoverable from the
// description text, so it comes back "any" and the user re-selects it.
func formForRule(rule ufw.Rule, service, note string) ruleForm {
	f := newRuleForm()
	f.editing = true
	f.ruleIndex = rule.Index

	fields := rules.ParseDescription(rule.Description)
	f.actionIdx = indexOf(rules.Actions, fields.Action)
	f.directionIdx = indexOf(rules.Directions, fields.Direction)
	f.protocolIdx = indexOf(rules.Protocols, fields.Protocol)
	f.setValue(fieldPort, fields.Port)
	f.setValue(fieldAddress, fields.Address)
	f.setValue(fieldService, service)
	f.setValue(fieldNote, note)
	return f
}

func (f *ruleForm) isEnum(field formField) bool {
	return field == fieldAction || field == fieldDirection || field == fieldProtocol
}

func (f *ruleForm) next() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *ruleForm) prev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *ruleForm) setFocus(field formField) {
	if ti, ok := f.inputs[f.focus]; ok {
		ti.Blur()
		f.inputs[f.focus] = ti
	}
	f.focus = field
	if ti, ok := f.inputs[field]; ok {
		ti.Focus()
		ti.CursorEnd()
		f.inputs[field] = ti
	}
}

func (f *ruleForm) cycle(delta int) {
	switch f.focus {
	case fieldAction:
		f.actionIdx = wrapIndex(f.actionIdx+delta, len(rules.Actions))
	case fieldDirection:
		f.directionIdx = wrapIndex(f.directionIdx+delta, len(rules.Directions))
	case fieldProtocol:
		f.protocolIdx = wrapIndex(f.protocolIdx+delta, len(rules.Protocols))
	}
}

func (f *ruleForm) updateInput(msg tea.KeyMsg) tea.Cmd {
	ti, ok := f.inputs[f.focus]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	ti, cmd = ti.Update(msg)
	f.inputs[f.focus] = ti
	return cmd
}

func (f *ruleForm) value(field formField) string {
	return f.inputs[field].Value()
}

func (f *ruleForm) setValue(field formField, value string) {
	ti := f.inputs[field]
	ti.SetValue(value)
	f.inputs[field] = ti
}

func (f *ruleForm) fields() rules.Fields {
	address := strings.TrimSpace(f.value(fieldAddress))
	if address == "" {
		address = rules.AnyAddress
	}
	return rules.Fields{
		Action:    rules.Actions[f.actionIdx],
		Direction: rules.Directions[f.directionIdx],
		Protocol:  rules.Protocols[f.protocolIdx],
		Port:      strings.TrimSpace(f.value(fieldPort)),
		Address:   address,
		Service:   strings.TrimSpace(f.value(fieldService)),
		Note:      strings.TrimSpace(f.value(fieldNote)),
	}
}

// commit validates the form and yields the structured fields plus the built
// command string. On failure nothing is produced and the form state is left
// untouched so the offending value stays editable.
func (f *ruleForm) commit() (rules.Fields, string, error) {
	fields := f.fields()
	if err := validation.IsValidRemoteAddress(fields.Address); err != nil {
		return rules.Fields{}, "", err
	}
	spec, err := rules.Build(fields)
	if err != nil {
		return rules.Fields{}, "", err
	}
	return fields, spec, nil
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
