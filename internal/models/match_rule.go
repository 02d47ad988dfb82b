package models

// MatchRule automatically categorizes imported transactions.
//
// Match is a glob pattern that is applied to the description of an imported
// transaction. Rules are applied in ascending priority order, the first
// matching rule wins.
type MatchRule struct {
	DefaultModel
	Priority      uint   `json:"priority" example:"1"`
	Match         string `json:"match" example:"Uber*"`
	Category      string `json:"category" example:"Transport"`
	PaymentMethod string `json:"paymentMethod,omitempty" example:"Credit card"`
}
