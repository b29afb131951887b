package model

import "time"

// SegmentedCustomer is one normalized and scored arrival row.
// Pointer fields are null when the source cell was absent or unusable;
// Revenue is null exactly when SpesaMedia is null.
type SegmentedCustomer struct {
	RowIndex         int      `json:"row_index"`
	Segment          Segment  `json:"segment"`
	Scores           Scores   `json:"scores"`
	NumeroNotti      int      `json:"numero_notti"`
	NumeroOspiti     int      `json:"numero_ospiti"`
	Canale           *string  `json:"canale"`
	GiornoArrivo     *string  `json:"giorno_arrivo"`
	StoricoSoggiorni int      `json:"storico_soggiorni"`
	SpesaMedia       *float64 `json:"spesa_media"`
	ClienteID        *string  `json:"cliente_id"`
	NomeCliente      *string  `json:"nome_cliente"`
	DataArrivo       *string  `json:"data_arrivo"`
	CategoriaCamera  *string  `json:"categoria_camera"`
	Revenue          *float64 `json:"revenue"`
}

// Analysis is the immutable result of one upload, kept in the in-memory
// store under an opaque identifier until evicted.
type Analysis struct {
	ID        string              `json:"analysis_id"`
	Filename  string              `json:"filename"`
	CreatedAt time.Time           `json:"created_at"`
	Customers []SegmentedCustomer `json:"customers"`
	Threshold *float64            `json:"spend_threshold"`
}
