package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Coordinates identifies a component in the scan service's catalog.
type Coordinates struct {
	Format  string `json:"format,omitempty"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (c Coordinates) String() string {
	s := c.Name + "@" + c.Version
	if c.Format != "" {
		s = c.Format + ":" + s
	}
	return s
}

// ParseCoordinates parses "format:name@version" (format optional) as used
// on the command line.
func ParseCoordinates(s string) (Coordinates, error) {
	var c Coordinates
	rest := s
	if idx := strings.Index(rest, ":"); idx >= 0 {
		c.Format = rest[:idx]
		rest = rest[idx+1:]
	}
	idx := strings.LastIndex(rest, "@")
	if idx <= 0 || idx == len(rest)-1 {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q, expected [format:]name@version", s)
	}
	c.Name = rest[:idx]
	c.Version = rest[idx+1:]
	return c, nil
}

// Artifact is one entry of a component-details response. Vulnerability
// payloads stay opaque; rendering them is someone else's job.
type Artifact struct {
	Coordinates     Coordinates     `json:"coordinates"`
	MatchState      string          `json:"matchState,omitempty"`
	CatalogDate     string          `json:"catalogDate,omitempty"`
	HighestSeverity float64         `json:"highestSeverity,omitempty"`
	Vulnerabilities json.RawMessage `json:"vulnerabilities,omitempty"`
}

// ModuleReport is one entry of a module-metadata response.
type ModuleReport struct {
	Coordinates Coordinates     `json:"coordinates"`
	Description string          `json:"description,omitempty"`
	Website     string          `json:"website,omitempty"`
	License     string          `json:"license,omitempty"`
	Extra       json.RawMessage `json:"extra,omitempty"`
}

type componentDetailsRequest struct {
	Components []Coordinates `json:"components"`
}

type componentDetailsResponse struct {
	Artifacts []Artifact `json:"componentDetails"`
}

type moduleMetadataRequest struct {
	Components []Coordinates `json:"components"`
}

type moduleMetadataResponse struct {
	Modules []ModuleReport `json:"modules"`
}
