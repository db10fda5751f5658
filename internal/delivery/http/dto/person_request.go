package dto

type PersonRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	JobTitle   string  `json:"jobTitle"`
	Department string  `json:"department"`
	Email      string  `json:"email"`
	PhotoURL   *string `json:"photoUrl"`
}
