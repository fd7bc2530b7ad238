package models

// Ngo is the tenant that owns observers and admins. Every authorized API
// call carries the id of an NGO in its token.
type Ngo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`

	// Organizer marks the NGO running the monitoring effort. Its admins
	// get access to data of all NGOs.
	Organizer bool `json:"organizer"`
	IsActive  bool `json:"isActive"`
}

// NgoAdmin is a back-office account of an NGO.
type NgoAdmin struct {
	ID      int64  `json:"id"`
	NgoID   int64  `json:"idNgo"`
	Account string `json:"account"`

	// Password holds the hashed password. It is never serialized.
	Password string `json:"-"`
}
