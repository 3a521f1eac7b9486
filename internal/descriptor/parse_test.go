// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDescriptor = `
id: urn:dmb:dp:finance:cashflow:0
name: Cashflow
description: Cashflow data product
domain: finance
kind: dataproduct
version: 0.1.0
environment: development
dataProductOwner: user:john.doe_example.com
ownerGroup: group:finance
devGroup: group:dev
email: finance@example.com
components:
  - id: urn:dmb:cmp:finance:cashflow:0:report
    name: Report
    description: Monthly report output port
    kind: outputport
    version: 0.1.0
    platform: GCP
    technology: BigQuery
    outputPortType: SQL
    dataContract:
      schema:
        - name: amount
          dataType: DECIMAL
          dataLength: 10
          tags:
            - tagFQN: PII.Sensitive
              source: Classification
        - name: account
          dataType: VARCHAR
  - id: urn:dmb:cmp:finance:cashflow:0:ingestion
    name: Ingestion
    kind: workload
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid descriptor", func(t *testing.T) {
		t.Parallel()

		dataProduct, err := Parse(validDescriptor)
		require.NoError(t, err)

		assert.Equal(t, "urn:dmb:dp:finance:cashflow:0", dataProduct.ID)
		assert.Equal(t, "Cashflow", dataProduct.Name)
		assert.Equal(t, "finance", dataProduct.Domain)
		assert.Equal(t, KindDataProduct, dataProduct.Kind)
		require.Len(t, dataProduct.Components, 2)

		port := dataProduct.Components[0]
		assert.Equal(t, "urn:dmb:cmp:finance:cashflow:0:report", port.ID)
		assert.Equal(t, "BigQuery", port.Technology)
		require.Len(t, port.DataContract.Schema, 2)
		assert.Equal(t, "amount", port.DataContract.Schema[0].Name)
		assert.Equal(t, 10, port.DataContract.Schema[0].DataLength)
		require.Len(t, port.DataContract.Schema[0].Tags, 1)
		assert.Equal(t, "PII.Sensitive", port.DataContract.Schema[0].Tags[0].TagFQN)
		assert.Equal(t, TagSourceClassification, port.DataContract.Schema[0].Tags[0].Source)
	})

	t.Run("invalid yaml document", func(t *testing.T) {
		t.Parallel()

		dataProduct, err := Parse("\tnot yaml")
		assert.ErrorIs(t, err, ErrParsing)
		assert.Nil(t, dataProduct)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		dataProduct, err := Parse(`
id: urn:dmb:dp:finance:cashflow:0
name: Cashflow
`)
		assert.ErrorIs(t, err, ErrInvalidDescriptor)
		assert.ErrorContains(t, err, "Domain")
		assert.ErrorContains(t, err, "Environment")
		assert.Nil(t, dataProduct)
	})

	t.Run("missing required fields on components", func(t *testing.T) {
		t.Parallel()

		dataProduct, err := Parse(`
id: urn:dmb:dp:finance:cashflow:0
name: Cashflow
domain: finance
kind: dataproduct
version: 0.1.0
environment: development
dataProductOwner: user:john.doe_example.com
ownerGroup: group:finance
devGroup: group:dev
components:
  - name: Report
    kind: outputport
`)
		assert.ErrorIs(t, err, ErrInvalidDescriptor)
		assert.ErrorContains(t, err, "Components[0].ID")
		assert.Nil(t, dataProduct)
	})
}

func TestOutputPorts(t *testing.T) {
	t.Parallel()

	dataProduct, err := Parse(validDescriptor)
	require.NoError(t, err)

	ports := dataProduct.OutputPorts()
	require.Len(t, ports, 1)
	assert.Equal(t, "urn:dmb:cmp:finance:cashflow:0:report", ports[0].ID)
}
