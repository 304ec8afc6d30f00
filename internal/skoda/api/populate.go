package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/carconnectivity/connector-skoda/internal/skoda"
	"github.com/carconnectivity/connector-skoda/internal/skoda/apidebug"
	"github.com/carconnectivity/connector-skoda/pkg/log"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

const manufacturingDateLayout = "2006-01-02"

// Keys of the garage vehicle document the schema models. Anything else is
// reported through apidebug and aggregated into the extras attribute.
var allowedVehicleKeys = []string{
	"vin", "name", "title", "state", "devicePlatform", "systemModelId",
	"priority", "workshopModeEnabled", "capabilities", "specification",
	"servicePartner", "renders", "compositeRenders",
}

var allowedSpecificationKeys = []string{
	"title", "model", "modelYear", "body", "trimLevel", "manufacturingDate",
	"exteriorColour", "systemCode", "systemModelId", "engine", "gearbox",
	"exteriorDimensions",
}

// Populator applies decoded garage API documents onto vehicle entities.
type Populator struct {
	logger log.Logger
	cfg    *apidebug.Config
}

// NewPopulator creates a populator. A nil logger falls back to the global
// logger, a nil config to the quiet defaults.
func NewPopulator(logger log.Logger, cfg *apidebug.Config) *Populator {
	if logger == nil {
		logger = log.Std()
	}
	if cfg == nil {
		cfg = apidebug.NewConfig()
	}
	return &Populator{logger: logger.WithName("skoda-api"), cfg: cfg}
}

// Decode parses a raw garage vehicle document.
func Decode(raw []byte) (*VehiclePayload, error) {
	var payload VehiclePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode garage vehicle document: %w", err)
	}
	return &payload, nil
}

// DetectKind derives the vehicle kind warranted by the payload: charging
// capability plus fuel status means hybrid, charging alone electric, a
// fuel-burning engine combustion, anything else generic.
func DetectKind(payload *VehiclePayload) vehicle.Kind {
	charging := hasCapability(payload, skoda.CapabilityCharging)
	fuel := hasCapability(payload, skoda.CapabilityFuelStatus)
	if !fuel && payload.Specification != nil && payload.Specification.Engine != nil {
		fuel = payload.Specification.Engine.Type != "" && payload.Specification.Engine.Type != "EV"
	}

	switch {
	case charging && fuel:
		return vehicle.KindHybrid
	case charging:
		return vehicle.KindElectric
	case fuel:
		return vehicle.KindCombustion
	default:
		return vehicle.KindGeneric
	}
}

func hasCapability(payload *VehiclePayload, id string) bool {
	if payload.Capabilities == nil {
		return false
	}
	for _, c := range payload.Capabilities.Capabilities {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Populate applies a raw garage vehicle document onto v. Unknown keys are
// reported through the sanitizer and aggregated into the extras attribute;
// they never fail the population. Only malformed JSON is an error.
func (p *Populator) Populate(v *skoda.Vehicle, raw []byte) error {
	payload, err := Decode(raw)
	if err != nil {
		return err
	}

	var rawMap map[string]any
	if err := json.Unmarshal(raw, &rawMap); err != nil {
		return fmt.Errorf("failed to decode garage vehicle document: %w", err)
	}

	where := "garage/vehicles/" + payload.VIN
	apidebug.LogExtraKeys(p.logger, p.cfg, where, rawMap, allowedVehicleKeys...)

	v.RawAPI.SetValue(string(raw))
	p.applyExtras(v, rawMap, allowedVehicleKeys)

	if payload.Title != "" {
		v.Title.SetValue(payload.Title)
	}
	if payload.Name != "" {
		v.Model().SetValue(payload.Name)
	}
	if payload.State != "" {
		v.State.SetValue(payload.State)
	}
	if payload.DevicePlatform != "" {
		v.DevicePlatform.SetValue(payload.DevicePlatform)
	}
	if payload.SystemModelID != "" {
		v.SystemModelID.SetValue(payload.SystemModelID)
	}
	if payload.Priority != "" {
		v.Priority.SetValue(payload.Priority.String())
	}
	if payload.WorkshopModeEnabled != nil {
		v.WorkshopModeEnabled.SetValue(*payload.WorkshopModeEnabled)
	}

	if payload.Capabilities != nil {
		for _, c := range payload.Capabilities.Capabilities {
			entry := v.Capabilities.Add(c.ID)
			if len(c.Statuses) > 0 {
				entry.Status.SetValue(strings.Join(c.Statuses, ","))
			}
		}
	}

	if payload.Specification != nil {
		p.populateSpecification(v, payload.Specification, rawMap)
	}

	if payload.ServicePartner != nil && payload.ServicePartner.ID != "" {
		v.ServicePartner.PartnerID.SetValue(payload.ServicePartner.ID)
	}

	p.applyRenders(v, payload)
	return nil
}

func (p *Populator) populateSpecification(v *skoda.Vehicle, spec *SpecificationPayload, rawMap map[string]any) {
	if nested, ok := rawMap["specification"].(map[string]any); ok {
		apidebug.LogExtraKeys(p.logger, p.cfg, "garage/vehicles/"+v.ID()+"/specification",
			nested, allowedSpecificationKeys...)
	}

	s := v.Specification
	if spec.Title != "" {
		s.Title.SetValue(spec.Title)
	}
	if spec.ModelYear != "" {
		s.ModelYear.SetValue(spec.ModelYear)
	}
	if spec.Body != "" {
		s.Body.SetValue(spec.Body)
	}
	if spec.TrimLevel != "" {
		s.TrimLevel.SetValue(spec.TrimLevel)
	}
	if spec.ExteriorColour != "" {
		s.ExteriorColour.SetValue(spec.ExteriorColour)
	}
	if spec.SystemCode != "" {
		s.SystemCode.SetValue(spec.SystemCode)
	}
	if spec.SystemModelID != "" {
		s.SystemModelID.SetValue(spec.SystemModelID)
	}
	if spec.ManufacturingDate != "" {
		if date, err := time.Parse(manufacturingDateLayout, spec.ManufacturingDate); err == nil {
			s.ManufacturingDate.SetValue(date)
		} else {
			p.logger.Debug("unparseable manufacturing date",
				"vin", v.ID(), "value", spec.ManufacturingDate)
		}
	}

	if spec.Engine != nil {
		if spec.Engine.Type != "" {
			s.Engine.Type.SetValue(spec.Engine.Type)
		}
		if spec.Engine.PowerInKW != "" {
			s.Engine.PowerInKW.SetValue(spec.Engine.PowerInKW.String())
		}
		if spec.Engine.CapacityInLiters != "" {
			s.Engine.CapacityInLiters.SetValue(spec.Engine.CapacityInLiters.String())
		}
	}
	if spec.Gearbox != nil && spec.Gearbox.Type != "" {
		s.Gearbox.Type.SetValue(spec.Gearbox.Type)
	}
	if spec.ExteriorDimensions != nil {
		dims := spec.ExteriorDimensions
		if dims.LengthInMm != "" {
			s.ExteriorDimensions.LengthInMm.SetValue(dims.LengthInMm.String())
		}
		if dims.WidthInMm != "" {
			s.ExteriorDimensions.WidthInMm.SetValue(dims.WidthInMm.String())
		}
		if dims.HeightInMm != "" {
			s.ExteriorDimensions.HeightInMm.SetValue(dims.HeightInMm.String())
		}
	}
}

// ApplySteeringWheelPosition stores the steering wheel position, which the
// API reports on the air-conditioning endpoint rather than the garage
// document.
func (p *Populator) ApplySteeringWheelPosition(v *skoda.Vehicle, position string) {
	switch strings.ToUpper(position) {
	case string(vehicle.SteeringPositionLeft):
		v.Specification.SteeringWheelPosition.SetValue(vehicle.SteeringPositionLeft)
	case string(vehicle.SteeringPositionRight):
		v.Specification.SteeringWheelPosition.SetValue(vehicle.SteeringPositionRight)
	default:
		v.Specification.SteeringWheelPosition.SetValue(vehicle.SteeringPositionUnknown)
	}
}

// applyExtras aggregates unmodeled top-level fields into the extras
// attribute as a JSON object. Serialization failure degrades to skipping
// the attribute, never to failing population.
func (p *Populator) applyExtras(v *skoda.Vehicle, rawMap map[string]any, allowed []string) {
	extraKeys := apidebug.ExtraKeys(rawMap, allowed...)
	if len(extraKeys) == 0 {
		return
	}
	extras := make(map[string]any, len(extraKeys))
	for _, k := range extraKeys {
		extras[k] = rawMap[k]
	}
	data, err := json.Marshal(extras)
	if err != nil {
		p.logger.Debug("failed to serialize extras", "vin", v.ID(), err)
		return
	}
	v.Extras.SetValue(string(data))
}

func (p *Populator) applyRenders(v *skoda.Vehicle, payload *VehiclePayload) {
	if len(payload.Renders) > 0 {
		if data, err := json.Marshal(payload.Renders); err == nil {
			v.Renders.SetValue(string(data))
		}
	}
	if len(payload.CompositeRenders) == 0 {
		return
	}
	if data, err := json.Marshal(payload.CompositeRenders); err == nil {
		v.CompositeRenders.SetValue(string(data))
	}

	var urls []string
	for _, composite := range payload.CompositeRenders {
		for _, layer := range composite.Layers {
			if layer.URL != "" {
				urls = append(urls, layer.URL)
			}
		}
	}
	if len(urls) > 0 {
		if data, err := json.Marshal(urls); err == nil {
			v.CompositeRenderURLs.SetValue(string(data))
		}
	}
}
