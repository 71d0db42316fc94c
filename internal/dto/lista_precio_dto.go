package dto

type CrearListaPrecioRequest struct {
	Nombre string `json:"nombre"  validate:"required,min=1"`
	EsBase bool   `json:"es_base"`
}

type ActualizarListaPrecioRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1"`
}

type ListaPrecioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	EsBase bool   `json:"es_base"`
}
