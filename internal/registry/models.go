package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Charge is a registered security interest against a company.
type Charge struct {
	ChargeCode      string           `json:"charge_code"`
	ChargeNumber    int              `json:"charge_number"`
	Status          string           `json:"status"`
	CreatedOn       string           `json:"created_on"`
	Classification  Classification   `json:"classification"`
	PersonsEntitled []PersonEntitled `json:"persons_entitled"`
}

// Classification describes the kind of charge.
type Classification struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// PersonEntitled is a party holding a charge.
type PersonEntitled struct {
	Name string `json:"name"`
}

// HolderNames returns the names of the persons entitled, in registry order.
func (c Charge) HolderNames() []string {
	names := make([]string, 0, len(c.PersonsEntitled))
	for _, p := range c.PersonsEntitled {
		names = append(names, p.Name)
	}
	return names
}

// CompanyProfile is the subset of the company profile used by the report.
type CompanyProfile struct {
	CompanyName             string                `json:"company_name"`
	CompanyNumber           string                `json:"company_number"`
	CompanyStatus           string                `json:"company_status"`
	Type                    string                `json:"type"`
	DateOfCreation          string                `json:"date_of_creation"`
	RegisteredOfficeAddress Address               `json:"registered_office_address"`
	Accounts                Accounts              `json:"accounts"`
	ConfirmationStatement   ConfirmationStatement `json:"confirmation_statement"`
}

// Accounts holds the accounts filing metadata of a company.
type Accounts struct {
	Overdue      bool         `json:"overdue"`
	LastAccounts LastAccounts `json:"last_accounts"`
}

// LastAccounts describes the most recently filed accounts.
type LastAccounts struct {
	Type     string `json:"type"`
	MadeUpTo string `json:"made_up_to"`
}

// ConfirmationStatement holds the confirmation statement filing metadata.
type ConfirmationStatement struct {
	Overdue bool `json:"overdue"`
}

// IsDormant reports whether the latest accounts were filed as dormant.
func (p CompanyProfile) IsDormant() bool {
	return p.Accounts.LastAccounts.Type == "dormant"
}

// Officer is a company officer.
type Officer struct {
	Name        string `json:"name"`
	OfficerRole string `json:"officer_role"`
	AppointedOn string `json:"appointed_on"`
	ResignedOn  string `json:"resigned_on"`
}

// FirstDirector returns the first officer whose role is "director", or the
// zero Officer if there is none.
func FirstDirector(officers []Officer) Officer {
	for _, o := range officers {
		if o.OfficerRole == "director" {
			return o
		}
	}
	return Officer{}
}

type chargeList struct {
	Items []Charge `json:"items"`
}

type officerList struct {
	Items []Officer `json:"items"`
}

// =============================================================================
// ADDRESS
// =============================================================================

// AddressField is one key/value pair of an address object.
type AddressField struct {
	Key   string
	Value string
}

// Address is an address object with its fields kept in the order the
// registry sent them.
type Address []AddressField

// UnmarshalJSON decodes a JSON object, preserving key order. Scalar values
// are kept as text and null becomes an empty string.
func (a *Address) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("address: expected object, got %v", tok)
	}

	var fields Address
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("address field %q: %w", key, err)
		}
		fields = append(fields, AddressField{Key: key, Value: rawText(raw)})
	}

	*a = fields
	return nil
}

// String joins all field values with ", " in source order.
func (a Address) String() string {
	values := make([]string, len(a))
	for i, f := range a {
		values[i] = f.Value
	}
	return strings.Join(values, ", ")
}

func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	text := string(bytes.TrimSpace(raw))
	if text == "null" {
		return ""
	}
	return text
}
