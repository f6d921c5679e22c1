// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentColumns holds the columns for the "document" table.
	DocumentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "nacc_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "mode", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "records", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentTable holds the schema information for the "document" table.
	DocumentTable = &schema.Table{
		Name:       "document",
		Columns:    DocumentColumns,
		PrimaryKey: []*schema.Column{DocumentColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_nacc_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentColumns[1]},
			},
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentColumns[5]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "mode", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_document_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[8]},
				RefColumns: []*schema.Column{DocumentColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_document_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[8], ExtractJobColumns[2], ExtractJobColumns[3]},
			},
		},
	}
	// VerdictColumns holds the columns for the "verdict" table.
	VerdictColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rule", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "detail", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// VerdictTable holds the schema information for the "verdict" table.
	VerdictTable = &schema.Table{
		Name:       "verdict",
		Columns:    VerdictColumns,
		PrimaryKey: []*schema.Column{VerdictColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verdict_document_verdicts",
				Columns:    []*schema.Column{VerdictColumns[6]},
				RefColumns: []*schema.Column{DocumentColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verdict_document_id_rule",
				Unique:  false,
				Columns: []*schema.Column{VerdictColumns[6], VerdictColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentTable,
		ExtractJobTable,
		VerdictTable,
	}
)

func init() {
	DocumentTable.Annotation = &entsql.Annotation{
		Table: "document",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = DocumentTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	VerdictTable.ForeignKeys[0].RefTable = DocumentTable
	VerdictTable.Annotation = &entsql.Annotation{
		Table: "verdict",
	}
}
