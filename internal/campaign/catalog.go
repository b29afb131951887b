// Package campaign holds the static marketing-campaign catalog, keyed by
// segment. The catalog is injected into the marketing report; the scoring
// core has no dependency on it.
package campaign

import "github.com/Miguelll86/customer-segmentation/internal/model"

// Campaign is one suggested marketing action for a segment.
type Campaign struct {
	Titolo      string        `json:"titolo"`
	Descrizione string        `json:"descrizione"`
	Tipo        string        `json:"tipo"`
	Segmento    model.Segment `json:"segmento"`
}

// Catalog maps each segment to its campaigns.
type Catalog map[model.Segment][]Campaign

// ForSegment returns the campaigns for a segment, nil when none exist.
func (c Catalog) ForSegment(seg model.Segment) []Campaign {
	return c[seg]
}

// DefaultCatalog returns the built-in campaign set. Callers get a fresh copy
// of the slices so the defaults stay immutable.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(defaultCampaigns))
	for seg, list := range defaultCampaigns {
		cp := make([]Campaign, len(list))
		copy(cp, list)
		out[seg] = cp
	}
	return out
}

var defaultCampaigns = Catalog{
	model.SegmentBusiness: {
		{Titolo: "Pacchetto corporate midweek", Descrizione: "Tariffa riservata per soggiorni Lun-Mer con colazione e Wi-Fi incluso.", Tipo: "pacchetto", Segmento: model.SegmentBusiness},
		{Titolo: "Sconto ricorrente aziendale", Descrizione: "Sconto del 15% per prenotazioni ripetute con contratto aziendale.", Tipo: "sconto", Segmento: model.SegmentBusiness},
		{Titolo: "Upgrade veloce", Descrizione: "Upgrade a camera superiore al check-in se disponibile (supplemento ridotto).", Tipo: "upgrade", Segmento: model.SegmentBusiness},
	},
	model.SegmentLeisure: {
		{Titolo: "Offerta stagionale", Descrizione: "Promozione early booking per le prossime stagioni con sconto fino al 20%.", Tipo: "stagionale", Segmento: model.SegmentLeisure},
		{Titolo: "Esperienze locali", Descrizione: "Pacchetto esperienze (tour, degustazioni) in collaborazione con partner locali.", Tipo: "esperienza", Segmento: model.SegmentLeisure},
		{Titolo: "Sconto prenotazione anticipata", Descrizione: "Fino al 25% di sconto per prenotazioni con almeno 30 giorni di anticipo.", Tipo: "early_booking", Segmento: model.SegmentLeisure},
	},
	model.SegmentCoppia: {
		{Titolo: "Pacchetto romantico", Descrizione: "Notte romantica con champagne, fiori e late checkout incluso.", Tipo: "pacchetto", Segmento: model.SegmentCoppia},
		{Titolo: "Cena + Spa", Descrizione: "Dinner per due e accesso spa con sconto dedicato alle coppie.", Tipo: "esperienza", Segmento: model.SegmentCoppia},
		{Titolo: "Late checkout", Descrizione: "Check-out entro le 16:00 senza supplemento per soggiorni weekend.", Tipo: "servizio", Segmento: model.SegmentCoppia},
	},
	model.SegmentFamiglia: {
		{Titolo: "Bambini gratis", Descrizione: "Soggiorno gratuito per bambini sotto i 12 anni in camera con i genitori.", Tipo: "sconto", Segmento: model.SegmentFamiglia},
		{Titolo: "Pacchetto family", Descrizione: "Family room + colazione bambini + attività kids club incluso.", Tipo: "pacchetto", Segmento: model.SegmentFamiglia},
		{Titolo: "Attività per bambini", Descrizione: "Animazione e laboratori per bambini nei weekend e in alta stagione.", Tipo: "esperienza", Segmento: model.SegmentFamiglia},
	},
	model.SegmentPremium: {
		{Titolo: "Concierge dedicato", Descrizione: "Concierge personale per prenotazioni ristoranti, transfer e esperienze su misura.", Tipo: "servizio", Segmento: model.SegmentPremium},
		{Titolo: "Upgrade prioritario", Descrizione: "Upgrade a suite o categoria superiore in base a disponibilità (priorità alta).", Tipo: "upgrade", Segmento: model.SegmentPremium},
		{Titolo: "Evento esclusivo", Descrizione: "Inviti a eventi riservati (degustazioni, serate) durante il soggiorno.", Tipo: "evento", Segmento: model.SegmentPremium},
		{Titolo: "Esperienza personalizzata", Descrizione: "Itinerari e attività cuciti su misura dal team concierge.", Tipo: "esperienza", Segmento: model.SegmentPremium},
	},
}
