package dto

// PadronResponse carries the normalized identity record returned by the tax
// registry lookup, used to pre-fill entity fields before a save.
type PadronResponse struct {
	RazonSocial  string `json:"razon_social"`
	Domicilio    string `json:"domicilio"`
	CondicionIVA string `json:"condicion_iva"`
	Estado       string `json:"estado"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
}
