package models

// Customer is the API view of a PCRT customer. It is built from either
// a pc_group row or an ungrouped pc_owner row; each contact field holds
// the group-level value when one exists, otherwise the asset-level
// value, otherwise null.
type Customer struct {
	ID               int     `json:"id"`
	Type             string  `json:"type"` // "group" or "asset"
	Name             *string `json:"name"`
	Phone            Phone   `json:"phone"`
	Email            *string `json:"email"`
	Address          Address `json:"address"`
	PreferredContact *string `json:"preferred_contact"`
	Notes            *string `json:"notes"`
	Company          *string `json:"company"`
}

type Phone struct {
	Home   *string `json:"home"`
	Mobile *string `json:"mobile"`
	Work   *string `json:"work"`
}

type Address struct {
	Line1    *string `json:"line_1"`
	Line2    *string `json:"line_2"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	PostCode *string `json:"post_code"`
}
