package controllers

import (
	"zanara/internal/logger"
	"zanara/internal/models"
)

// SchemaForType resolves the editor schema for a professional type. An
// unknown or missing type falls back to the model view; the fallback is a
// data-quality signal and is logged, never silently substituted.
func SchemaForType(raw string) Schema {
	t, ok := models.ParseProfessionalType(raw)
	if !ok {
		logger.Warn("unknown professional type, falling back to model view",
			"professional_type", raw,
		)
		return schemas[models.TypeModel]
	}
	return schemas[t]
}

// SchemaForProfile picks the schema a loaded profile should be mounted with.
func SchemaForProfile(p *models.Profile) Schema {
	if p == nil {
		return schemas[models.TypeModel]
	}
	return SchemaForType(string(p.ProfessionalType))
}
