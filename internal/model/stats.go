package model

// Stats holds the admin dashboard counters
type Stats struct {
	Products      int `json:"products" db:"products"`
	Categories    int `json:"categories" db:"categories"`
	Leads         int `json:"leads" db:"leads"`
	Orders        int `json:"orders" db:"orders"`
	NewLeads      int `json:"newLeads" db:"new_leads"`
	PendingOrders int `json:"pendingOrders" db:"pending_orders"`
}
