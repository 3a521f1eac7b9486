// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package provisioner

import (
	"github.com/mia-platform/omta/internal/descriptor"
	"github.com/mia-platform/omta/internal/openmetadata"
)

// Tag labels without an explicit label type or state are published as
// manually confirmed.
const (
	defaultLabelType = "Manual"
	defaultTagState  = "Confirmed"
)

// containerFor maps an output port to its container upsert request.
func containerFor(dataProduct *descriptor.DataProduct, dataProductName string, port descriptor.Component) (*openmetadata.CreateContainer, error) {
	componentName, err := descriptor.ComponentName(port.ID)
	if err != nil {
		return nil, err
	}

	return &openmetadata.CreateContainer{
		Name:         componentName,
		DisplayName:  port.Name,
		Description:  port.Description,
		Domain:       dataProduct.Domain,
		DataProducts: []string{dataProductName},
		DataModel: &openmetadata.ContainerDataModel{
			Columns: columnsFor(port),
		},
		Extension: map[string]string{
			"kind":       port.Kind,
			"platform":   port.Platform,
			"technology": port.Technology,
		},
	}, nil
}

// columnsFor maps the output port schema to catalog columns.
func columnsFor(port descriptor.Component) []openmetadata.Column {
	columns := make([]openmetadata.Column, 0, len(port.DataContract.Schema))
	for _, column := range port.DataContract.Schema {
		columns = append(columns, openmetadata.Column{
			Name:        column.Name,
			DataType:    column.DataType,
			DataLength:  column.DataLength,
			Description: column.Description,
			Tags:        tagLabelsFor(column),
		})
	}

	return columns
}

// tagLabelsFor maps the column tag labels, filling the defaults the
// descriptor may omit.
func tagLabelsFor(column descriptor.Column) []openmetadata.TagLabel {
	if len(column.Tags) == 0 {
		return nil
	}

	labels := make([]openmetadata.TagLabel, 0, len(column.Tags))
	for _, tag := range column.Tags {
		labelType := tag.LabelType
		if labelType == "" {
			labelType = defaultLabelType
		}
		state := tag.State
		if state == "" {
			state = defaultTagState
		}

		labels = append(labels, openmetadata.TagLabel{
			TagFQN:    tag.TagFQN,
			LabelType: labelType,
			Source:    tag.Source,
			State:     state,
		})
	}

	return labels
}
