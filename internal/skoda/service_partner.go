package skoda

import (
	"github.com/carconnectivity/connector-skoda/pkg/attributes"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
)

// ServicePartner holds the preferred service partner of a Škoda vehicle.
type ServicePartner struct {
	objects.GenericObject

	PartnerID *attributes.StringAttribute
}

// NewServicePartner builds a service partner entity.
//
// Unlike every other entity in this package, migration copies the scalar
// value into a freshly allocated attribute instead of re-parenting the
// origin's attribute object. The origin keeps sole ownership of its
// attribute, so a retained snapshot cannot be mutated through the new
// instance. This asymmetry is intentional; do not unify it with Adopt.
func NewServicePartner(parent objects.Object, origin *ServicePartner) *ServicePartner {
	p := &ServicePartner{GenericObject: objects.NewGenericObject("service_partner", parent)}
	p.PartnerID = attributes.CopyValue(originPartnerID(origin), "service_partner_id", p, attributes.TagConnector)
	return p
}

func originPartnerID(origin *ServicePartner) *attributes.StringAttribute {
	if origin == nil {
		return nil
	}
	return origin.PartnerID
}
