package entity

import "fmt"

// Address dirección postal embebida en Establishment y User.
type Address struct {
	ZipCode    string `json:"zip_code" bson:"zip_code"`
	Street     string `json:"street" bson:"street"`
	District   string `json:"district" bson:"district"`
	Complement string `json:"complement,omitempty" bson:"complement,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	Number     int    `json:"number" bson:"number"`
}

// String formato de exhibición: "rua, número - bairro, cidade - UF, cep".
func (a Address) String() string {
	return fmt.Sprintf("%s, %d - %s, %s - %s, %s",
		a.Street, a.Number, a.District, a.City, a.State, a.ZipCode)
}

// Phone teléfono brasileño: DDD de 2 dígitos + número de 9 dígitos.
type Phone struct {
	AreaCode string `json:"area_code" bson:"area_code"`
	Number   string `json:"number" bson:"number"`
}

// String formato "AA NÚMERO".
func (p Phone) String() string {
	return p.AreaCode + " " + p.Number
}
