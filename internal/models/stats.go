package models

// Stats представляет сводные счетчики для панели оператора.
type Stats struct {
	UnacceptedOrders int `json:"unaccepted_orders"`
	AcceptedOrders   int `json:"accepted_orders"`
	CompletedOrders  int `json:"completed_orders"`
	AvailableParts   int `json:"available_parts"`
}
