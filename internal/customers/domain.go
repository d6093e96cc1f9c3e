package customers

// Customer is a registered entity that sales are attributed to. The roster is
// maintained by an external administrative process; this service only reads it.
type Customer struct {
	ID      int    `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
