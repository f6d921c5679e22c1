// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/opennacc/declaration-extractor/db/ent/schema"
	"github.com/opennacc/declaration-extractor/gen/ent/document"
	"github.com/opennacc/declaration-extractor/gen/ent/extractjob"
	"github.com/opennacc/declaration-extractor/gen/ent/verdict"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[3].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescMode is the schema descriptor for mode field.
	extractjobDescMode := extractjobFields[2].Descriptor()
	// extractjob.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	extractjob.ModeValidator = extractjobDescMode.Validators[0].(func(string) error)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	verdictFields := schema.Verdict{}.Fields()
	_ = verdictFields
	// verdictDescRule is the schema descriptor for rule field.
	verdictDescRule := verdictFields[2].Descriptor()
	// verdict.RuleValidator is a validator for the "rule" field. It is called by the builders before save.
	verdict.RuleValidator = verdictDescRule.Validators[0].(func(string) error)
	// verdictDescSeverity is the schema descriptor for severity field.
	verdictDescSeverity := verdictFields[3].Descriptor()
	// verdict.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	verdict.SeverityValidator = verdictDescSeverity.Validators[0].(func(string) error)
	// verdictDescCreatedAt is the schema descriptor for created_at field.
	verdictDescCreatedAt := verdictFields[6].Descriptor()
	// verdict.DefaultCreatedAt holds the default value on creation for the created_at field.
	verdict.DefaultCreatedAt = verdictDescCreatedAt.Default.(func() time.Time)
	// verdictDescID is the schema descriptor for id field.
	verdictDescID := verdictFields[0].Descriptor()
	// verdict.DefaultID holds the default value on creation for the id field.
	verdict.DefaultID = verdictDescID.Default.(func() uuid.UUID)
}
