// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package openmetadata implements a REST client for the subset of the
// OpenMetadata API used to publish data products: storage services, domains,
// data products, containers, classification tags and glossary terms.
package openmetadata
