package domain

// Address is the postal address of a customer.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Customer is a garage client and their vehicle.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Contact   string
	VehicleNo string
	CarModel  string
	Avatar    string
	Address   *Address
	UserID    string
	Timestamps
}

// CustomerPatch lists the customer fields a partial update may change.
// Nil fields are left untouched.
type CustomerPatch struct {
	Name      *string
	Email     *string
	Contact   *string
	VehicleNo *string
	CarModel  *string
	Avatar    *string
	Address   *Address
}

// Apply copies every non-nil field of p onto c.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = NormalizeEmail(*p.Email)
	}
	if p.Contact != nil {
		c.Contact = *p.Contact
	}
	if p.VehicleNo != nil {
		c.VehicleNo = *p.VehicleNo
	}
	if p.CarModel != nil {
		c.CarModel = *p.CarModel
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	if p.Address != nil {
		addr := *p.Address
		c.Address = &addr
	}
}
