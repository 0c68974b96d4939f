// Package definitions loads the XRPL field-and-type catalog and exposes the
// lookups that drive canonical field ordering, field-identifier encoding, and
// per-type dispatch.
package definitions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed definitions.json
var definitionsJSON []byte

// FieldHeader identifies a field by its (type code, field code) pair. It is
// the thing a FieldIDCodec turns into 1-3 wire bytes.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// FieldInstance is the fully resolved metadata for one catalog field.
type FieldInstance struct {
	FieldName      string
	Type           string
	Nth            int32
	IsVLEncoded    bool
	IsSerialized   bool
	IsSigningField bool
	Header         FieldHeader
	// Ordinal orders fields by (TypeCode, FieldCode) as a single comparable
	// value; unknown fields/types sort below everything with -1.
	Ordinal int32
}

// Definitions is the immutable, process-wide catalog. It is safe for
// concurrent use: every field is populated once at construction and never
// mutated afterwards.
type Definitions struct {
	types                map[string]int32
	ledgerEntryTypes     map[string]int32
	fields               map[string]FieldInstance
	fieldsByHeader       map[FieldHeader]string
	transactionResults   map[string]int32
	transactionTypes     map[string]int32
	transactionTypeNames map[int32]string
}

type fieldDefJSON struct {
	Nth            int32  `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

// fieldEntry unmarshals one ["Name", {...}] tuple from the FIELDS array.
type fieldEntry struct {
	Name string
	Def  fieldDefJSON
}

func (f *fieldEntry) UnmarshalJSON(b []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &f.Name); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &f.Def)
}

type definitionsJSONShape struct {
	Types              map[string]int32 `json:"TYPES"`
	LedgerEntryTypes   map[string]int32 `json:"LEDGER_ENTRY_TYPES"`
	Fields             []fieldEntry     `json:"FIELDS"`
	TransactionResults map[string]int32 `json:"TRANSACTION_RESULTS"`
	TransactionTypes   map[string]int32 `json:"TRANSACTION_TYPES"`
}

// ErrFieldNotFound is returned when a field name or header has no catalog entry.
type ErrFieldNotFound struct {
	Name   string
	Header *FieldHeader
}

func (e *ErrFieldNotFound) Error() string {
	if e.Header != nil {
		return fmt.Sprintf("definitions: no field for header %+v", *e.Header)
	}
	return fmt.Sprintf("definitions: unknown field %q", e.Name)
}

func load() (*Definitions, error) {
	return parse(definitionsJSON)
}

// loadFile parses an alternate definitions catalog from disk, in the same
// five-table shape as the embedded definitions.json.
func loadFile(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definitions: read %s: %w", path, err)
	}
	return parse(data)
}

func parse(raw []byte) (*Definitions, error) {
	var shape definitionsJSONShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, fmt.Errorf("definitions: parse catalog: %w", err)
	}

	return build(shape), nil
}

func build(raw definitionsJSONShape) *Definitions {
	d := &Definitions{
		types:                raw.Types,
		ledgerEntryTypes:     raw.LedgerEntryTypes,
		fields:               make(map[string]FieldInstance, len(raw.Fields)),
		fieldsByHeader:       make(map[FieldHeader]string, len(raw.Fields)),
		transactionResults:   raw.TransactionResults,
		transactionTypes:     raw.TransactionTypes,
		transactionTypeNames: make(map[int32]string, len(raw.TransactionTypes)),
	}
	for name, code := range raw.TransactionTypes {
		d.transactionTypeNames[code] = name
	}

	for _, entry := range raw.Fields {
		typeCode, ok := d.types[entry.Def.Type]
		ordinal := int32(-1)
		header := FieldHeader{TypeCode: -1, FieldCode: -1}
		if ok {
			ordinal = typeCode*65536 + entry.Def.Nth
			header = FieldHeader{TypeCode: typeCode, FieldCode: entry.Def.Nth}
		}

		fi := FieldInstance{
			FieldName:      entry.Name,
			Type:           entry.Def.Type,
			Nth:            entry.Def.Nth,
			IsVLEncoded:    entry.Def.IsVLEncoded,
			IsSerialized:   entry.Def.IsSerialized,
			IsSigningField: entry.Def.IsSigningField,
			Header:         header,
			Ordinal:        ordinal,
		}
		d.fields[entry.Name] = fi
		if ok {
			d.fieldsByHeader[header] = entry.Name
		}
	}

	return d
}

var (
	once         sync.Once
	instance     *Definitions
	loadErr      error
	overridePath string
)

// UseFile points the process-wide catalog at an alternate definitions file
// instead of the embedded default, in the same five-table JSON shape as
// definitions.json. It has effect only if called before the first call to
// Get(); the catalog is loaded exactly once per process.
func UseFile(path string) {
	overridePath = path
}

// Get returns the process-wide Definitions catalog, parsing the embedded
// definitions.json (or the file passed to UseFile) on first use. It panics
// if the catalog is malformed or missing, which would indicate a build-time
// packaging bug or a bad configuration path rather than a runtime condition
// callers can recover from.
func Get() *Definitions {
	once.Do(func() {
		if overridePath != "" {
			instance, loadErr = loadFile(overridePath)
		} else {
			instance, loadErr = load()
		}
		if loadErr != nil {
			panic(loadErr)
		}
	})
	return instance
}

// SortKey returns the (type_code, field_code) tuple used to order fields
// canonically. Unknown field names or unknown declared types yield (-1, -1).
func (d *Definitions) SortKey(fieldName string) (int32, int32) {
	fi, ok := d.fields[fieldName]
	if !ok || fi.Header.TypeCode < 0 {
		return -1, -1
	}
	return fi.Header.TypeCode, fi.Header.FieldCode
}

// FieldDef returns the resolved FieldInstance for a field name, if known.
func (d *Definitions) FieldDef(fieldName string) (*FieldInstance, bool) {
	fi, ok := d.fields[fieldName]
	if !ok {
		return nil, false
	}
	return &fi, true
}

// TypeCode resolves a catalog type name (e.g. "AccountID") to its integer code.
func (d *Definitions) TypeCode(typeName string) (int32, bool) {
	code, ok := d.types[typeName]
	return code, ok
}

// TransactionTypeCode resolves a TransactionType value name (e.g. "Payment")
// to the integer code emitted on the wire.
func (d *Definitions) TransactionTypeCode(name string) (int32, bool) {
	code, ok := d.transactionTypes[name]
	return code, ok
}

// TransactionTypeName reverse-resolves a wire TransactionType code to its
// catalog name.
func (d *Definitions) TransactionTypeName(code int32) (string, bool) {
	name, ok := d.transactionTypeNames[code]
	return name, ok
}

// LedgerEntryTypeCode resolves a LedgerEntryType value name. Carried for
// completeness; the core serializer does not require it.
func (d *Definitions) LedgerEntryTypeCode(name string) (int32, bool) {
	code, ok := d.ledgerEntryTypes[name]
	return code, ok
}

// TransactionResultCode resolves a TransactionResult value name. Carried for
// completeness; the core serializer does not require it.
func (d *Definitions) TransactionResultCode(name string) (int32, bool) {
	code, ok := d.transactionResults[name]
	return code, ok
}

// GetFieldInstanceByFieldName satisfies serdes's Definitions contract.
func (d *Definitions) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := d.fields[fieldName]
	if !ok {
		return nil, &ErrFieldNotFound{Name: fieldName}
	}
	return &fi, nil
}

// GetFieldHeaderByFieldName returns just the header portion of a field's metadata.
func (d *Definitions) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, ok := d.fields[fieldName]
	if !ok {
		return nil, &ErrFieldNotFound{Name: fieldName}
	}
	return &fi.Header, nil
}

// GetFieldNameByFieldHeader resolves a wire header back to its field name.
func (d *Definitions) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	name, ok := d.fieldsByHeader[fh]
	if !ok {
		return "", &ErrFieldNotFound{Header: &fh}
	}
	return name, nil
}

// CreateFieldHeader builds a FieldHeader from raw type/field codes without a
// catalog lookup; used by the FieldIDCodec when it already has both codes.
func (d *Definitions) CreateFieldHeader(typecode, fieldcode int32) FieldHeader {
	return FieldHeader{TypeCode: typecode, FieldCode: fieldcode}
}
