// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package provisioner implements the data product lifecycle operations:
// it validates descriptors against the catalog content and translates them
// into the sequence of catalog upserts and deletes that publish or retire a
// data product.
package provisioner
