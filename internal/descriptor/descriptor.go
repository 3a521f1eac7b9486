// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package descriptor

const (
	// KindDataProduct is the descriptor kind of a data product root document.
	KindDataProduct = "dataproduct"
	// KindOutputPort is the component kind of a published output port.
	KindOutputPort = "outputport"

	// TagSourceClassification marks a tag label backed by a classification tag.
	TagSourceClassification = "Classification"
	// TagSourceGlossary marks a tag label backed by a glossary term.
	TagSourceGlossary = "Glossary"
)

// DataProduct is the root of a data product descriptor.
type DataProduct struct {
	ID               string         `yaml:"id" validate:"required"`
	Name             string         `yaml:"name" validate:"required"`
	Description      string         `yaml:"description"`
	Domain           string         `yaml:"domain" validate:"required"`
	Kind             string         `yaml:"kind" validate:"required"`
	Version          string         `yaml:"version" validate:"required"`
	Environment      string         `yaml:"environment" validate:"required"`
	DataProductOwner string         `yaml:"dataProductOwner" validate:"required"`
	OwnerGroup       string         `yaml:"ownerGroup" validate:"required"`
	DevGroup         string         `yaml:"devGroup" validate:"required"`
	Email            string         `yaml:"email"`
	Tags             []TagLabel     `yaml:"tags"`
	Specific         map[string]any `yaml:"specific"`
	Components       []Component    `yaml:"components" validate:"dive"`
}

// Component is a deployable unit of a data product. Only output ports are
// published to the catalog; other kinds are carried through untouched.
type Component struct {
	ID                       string         `yaml:"id" validate:"required"`
	Name                     string         `yaml:"name" validate:"required"`
	Description              string         `yaml:"description"`
	Kind                     string         `yaml:"kind" validate:"required"`
	Version                  string         `yaml:"version"`
	InfrastructureTemplateID string         `yaml:"infrastructureTemplateId"`
	Platform                 string         `yaml:"platform"`
	Technology               string         `yaml:"technology"`
	OutputPortType           string         `yaml:"outputPortType"`
	DependsOn                []string       `yaml:"dependsOn"`
	Tags                     []TagLabel     `yaml:"tags"`
	SemanticLinking          []any          `yaml:"semanticLinking"`
	DataContract             DataContract   `yaml:"dataContract"`
	Specific                 map[string]any `yaml:"specific"`
}

// DataContract describes the published schema of an output port.
type DataContract struct {
	Schema []Column `yaml:"schema" validate:"dive"`
}

// Column is a single field of an output port schema.
type Column struct {
	Name        string     `yaml:"name" validate:"required"`
	DataType    string     `yaml:"dataType" validate:"required"`
	DataLength  int        `yaml:"dataLength"`
	Description string     `yaml:"description"`
	Tags        []TagLabel `yaml:"tags" validate:"dive"`
}

// TagLabel attaches a classification tag or glossary term to an entity.
type TagLabel struct {
	TagFQN    string `yaml:"tagFQN" validate:"required"`
	LabelType string `yaml:"labelType"`
	Source    string `yaml:"source"`
	State     string `yaml:"state"`
}

// OutputPorts returns the components of the data product with the output
// port kind, preserving the descriptor order.
func (dp *DataProduct) OutputPorts() []Component {
	ports := make([]Component, 0, len(dp.Components))
	for _, component := range dp.Components {
		if component.Kind == KindOutputPort {
			ports = append(ports, component)
		}
	}

	return ports
}
