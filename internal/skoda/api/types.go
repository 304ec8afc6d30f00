// Package api holds the typed view of the MySkoda garage API payloads and
// the logic applying a decoded payload onto the Škoda vehicle tree. Network
// access, authentication and polling live outside this module; this package
// only consumes already-fetched JSON documents.
package api

import "encoding/json"

// VehiclePayload is a single vehicle entry of the garage API response.
type VehiclePayload struct {
	VIN                 string                   `json:"vin"`
	Name                string                   `json:"name"`
	Title               string                   `json:"title"`
	State               string                   `json:"state"`
	DevicePlatform      string                   `json:"devicePlatform"`
	SystemModelID       string                   `json:"systemModelId"`
	Priority            json.Number              `json:"priority"`
	WorkshopModeEnabled *bool                    `json:"workshopModeEnabled"`
	Capabilities        *CapabilitiesPayload     `json:"capabilities"`
	Specification       *SpecificationPayload    `json:"specification"`
	ServicePartner      *ServicePartnerPayload   `json:"servicePartner"`
	Renders             []RenderPayload          `json:"renders"`
	CompositeRenders    []CompositeRenderPayload `json:"compositeRenders"`
}

// CapabilitiesPayload wraps the capability list.
type CapabilitiesPayload struct {
	Capabilities []CapabilityPayload `json:"capabilities"`
}

// CapabilityPayload is one detected vehicle feature.
type CapabilityPayload struct {
	ID       string   `json:"id"`
	Statuses []string `json:"statuses"`
}

// SpecificationPayload mirrors the nested specification document.
type SpecificationPayload struct {
	Title              string             `json:"title"`
	Model              string             `json:"model"`
	ModelYear          string             `json:"modelYear"`
	Body               string             `json:"body"`
	TrimLevel          string             `json:"trimLevel"`
	ManufacturingDate  string             `json:"manufacturingDate"`
	ExteriorColour     string             `json:"exteriorColour"`
	SystemCode         string             `json:"systemCode"`
	SystemModelID      string             `json:"systemModelId"`
	Engine             *EnginePayload     `json:"engine"`
	Gearbox            *GearboxPayload    `json:"gearbox"`
	ExteriorDimensions *DimensionsPayload `json:"exteriorDimensions"`
}

// EnginePayload carries engine details. Numeric fields arrive as numbers or
// strings depending on API version, hence json.Number.
type EnginePayload struct {
	Type             string      `json:"type"`
	PowerInKW        json.Number `json:"powerInKW"`
	CapacityInLiters json.Number `json:"capacityInLiters"`
}

// GearboxPayload carries the gearbox type code.
type GearboxPayload struct {
	Type string `json:"type"`
}

// DimensionsPayload carries the exterior dimensions in millimeters.
type DimensionsPayload struct {
	LengthInMm json.Number `json:"lengthInMm"`
	WidthInMm  json.Number `json:"widthInMm"`
	HeightInMm json.Number `json:"heightInMm"`
}

// ServicePartnerPayload identifies the preferred service partner.
type ServicePartnerPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RenderPayload is a single vehicle render image reference.
type RenderPayload struct {
	URL       string `json:"url"`
	Type      string `json:"type"`
	ViewPoint string `json:"viewPoint"`
	Order     int    `json:"order"`
}

// CompositeRenderPayload is a render composed of stacked layers.
type CompositeRenderPayload struct {
	ViewType string          `json:"viewType"`
	Layers   []RenderPayload `json:"layers"`
}
