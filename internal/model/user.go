package model

// User is the identity record supplied by the API layer alongside a tax
// return. Address and AHV fields are required before an eCH-0119 export.
type User struct {
	Vorname      string `json:"vorname"`
	Nachname     string `json:"nachname"`
	AhvNummer    string `json:"ahvNummer"` // XXX.XXXX.XXXX.XX
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email,omitempty"`
	Geburtsdatum string `json:"geburtsdatum"` // DD.MM.YYYY
	Strasse      string `json:"strasse"`      // street line including house number
	Plz          string `json:"plz"`
	Ort          string `json:"ort"`
}
