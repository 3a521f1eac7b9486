// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package openmetadata

// EntityReference points to another catalog entity by id and type.
type EntityReference struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

// CreateStorageService is the upsert request for a storage service.
type CreateStorageService struct {
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"`
}

// StorageService is the synthesized service every container belongs to.
type StorageService struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
}

// CreateDomain is the upsert request for a domain.
type CreateDomain struct {
	Name        string `json:"name"`
	DomainType  string `json:"domainType"`
	Description string `json:"description"`
}

// Domain groups data products by business area. Domains may be shared by
// several data products and are never deleted by this adapter.
type Domain struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
}

// CreateDataProduct is the upsert request for a data product.
type CreateDataProduct struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	Domain      string `json:"domain"`
}

// DataProduct is the catalog entity mapped from a descriptor root.
type DataProduct struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
}

// TagLabel attaches a classification tag or glossary term to a column.
type TagLabel struct {
	TagFQN    string `json:"tagFQN"`
	LabelType string `json:"labelType"`
	Source    string `json:"source"`
	State     string `json:"state"`
}

// Column is a field of a container data model.
type Column struct {
	Name        string     `json:"name"`
	DataType    string     `json:"dataType"`
	DataLength  int        `json:"dataLength,omitempty"`
	Description string     `json:"description,omitempty"`
	Tags        []TagLabel `json:"tags,omitempty"`
}

// ContainerDataModel is the schema published by a container.
type ContainerDataModel struct {
	Columns []Column `json:"columns"`
}

// CreateContainer is the upsert request for a container; output ports map to
// containers. Service is filled by the client with the configured storage
// service when left empty.
type CreateContainer struct {
	Name         string              `json:"name"`
	DisplayName  string              `json:"displayName,omitempty"`
	Description  string              `json:"description,omitempty"`
	Domain       string              `json:"domain,omitempty"`
	Service      string              `json:"service"`
	DataProducts []string            `json:"dataProducts,omitempty"`
	DataModel    *ContainerDataModel `json:"dataModel,omitempty"`
	Extension    map[string]string   `json:"extension,omitempty"`
}

// Container is the catalog entity mapped from an output port.
type Container struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
}

// Tag is a classification tag entity.
type Tag struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
}

// GlossaryTerm is a business glossary entry; terms may be shared by several
// data products and are never deleted by this adapter.
type GlossaryTerm struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	FullyQualifiedName string           `json:"fullyQualifiedName,omitempty"`
	Glossary           EntityReference  `json:"glossary"`
	Domain             *EntityReference `json:"domain,omitempty"`
}

// entityType is a metadata type definition, used to register custom properties.
type entityType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// propertyType references the primitive type backing a custom property.
type propertyType struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// customProperty is the request payload that attaches a custom property to an
// entity type.
type customProperty struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	PropertyType propertyType `json:"propertyType"`
}

// paging is the cursor envelope of the list endpoints.
type paging struct {
	After string `json:"after,omitempty"`
	Total int    `json:"total"`
}
