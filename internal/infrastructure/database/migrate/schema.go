// Package migrate holds the canonical relational schema in ent's table form.
package migrate

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EmotionsColumns holds the columns for the "emotions" table.
	EmotionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "reference", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "pleasantness", Type: field.TypeFloat64, Default: 0},
		{Name: "attention", Type: field.TypeFloat64, Default: 0},
		{Name: "sensitivity", Type: field.TypeFloat64, Default: 0},
		{Name: "aptitude", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EmotionsTable holds the schema information for the "emotions" table.
	EmotionsTable = &schema.Table{
		Name:       "emotions",
		Columns:    EmotionsColumns,
		PrimaryKey: []*schema.Column{EmotionsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "reference", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "friendshipness", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "emotion_id", Type: field.TypeInt64, Unique: true, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_emotions_emotion_resume",
				Columns:    []*schema.Column{UsersColumns[6]},
				RefColumns: []*schema.Column{EmotionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "reference", Type: field.TypeString, Default: ""},
		{Name: "global_intention", Type: field.TypeString, Default: ""},
		{Name: "specific_intention", Type: field.TypeString, Default: ""},
		{Name: "text", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_users_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_reference",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1]},
			},
		},
	}
	// MessageResponsesColumns holds the columns for the "message_responses" table.
	MessageResponsesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeInt64},
		{Name: "response_id", Type: field.TypeInt64},
	}
	// MessageResponsesTable holds the schema information for the "message_responses" table.
	MessageResponsesTable = &schema.Table{
		Name:       "message_responses",
		Columns:    MessageResponsesColumns,
		PrimaryKey: []*schema.Column{MessageResponsesColumns[0], MessageResponsesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_responses_message_id",
				Columns:    []*schema.Column{MessageResponsesColumns[0]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "message_responses_response_id",
				Columns:    []*schema.Column{MessageResponsesColumns[1]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// QuotesColumns holds the columns for the "quotes" table.
	QuotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "reference", Type: field.TypeString, Size: 100},
		{Name: "quote", Type: field.TypeBytes, Size: 1000},
		{Name: "author", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuotesTable holds the schema information for the "quotes" table.
	QuotesTable = &schema.Table{
		Name:       "quotes",
		Columns:    QuotesColumns,
		PrimaryKey: []*schema.Column{QuotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quote_reference_quote",
				Unique:  true,
				Columns: []*schema.Column{QuotesColumns[1], QuotesColumns[2]},
			},
		},
	}
	// CustomConfigsColumns holds the columns for the "custom_configs" table.
	CustomConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "reference", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "server_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "main_channel", Type: field.TypeString, Nullable: true, Size: 35},
		{Name: "allow_auto_send_messages", Type: field.TypeBool, Default: true},
		{Name: "filter_offensive_messages", Type: field.TypeBool, Default: true},
		{Name: "allow_learning_from_chat", Type: field.TypeBool, Default: true},
	}
	// CustomConfigsTable holds the schema information for the "custom_configs" table.
	CustomConfigsTable = &schema.Table{
		Name:       "custom_configs",
		Columns:    CustomConfigsColumns,
		PrimaryKey: []*schema.Column{CustomConfigsColumns[0]},
	}
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "language", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "pos_tag", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "lemma", Type: field.TypeString, Nullable: true},
		{Name: "entity", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "polarity", Type: field.TypeFloat64, Nullable: true},
		{Name: "length", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "word_length",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[7]},
			},
		},
	}
	// MeaningsColumns holds the columns for the "meanings" table.
	MeaningsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "meaning", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "word_id", Type: field.TypeInt64},
	}
	// MeaningsTable holds the schema information for the "meanings" table.
	MeaningsTable = &schema.Table{
		Name:       "meanings",
		Columns:    MeaningsColumns,
		PrimaryKey: []*schema.Column{MeaningsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "meanings_words_meanings",
				Columns:    []*schema.Column{MeaningsColumns[3]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EmotionsTable,
		UsersTable,
		MessagesTable,
		MessageResponsesTable,
		QuotesTable,
		CustomConfigsTable,
		WordsTable,
		MeaningsTable,
	}
)

func init() {
	UsersTable.ForeignKeys[0].RefTable = EmotionsTable
	MessagesTable.ForeignKeys[0].RefTable = UsersTable
	MessageResponsesTable.ForeignKeys[0].RefTable = MessagesTable
	MessageResponsesTable.ForeignKeys[1].RefTable = MessagesTable
	MeaningsTable.ForeignKeys[0].RefTable = WordsTable
}

// Create runs the schema migration against drv. It only adds missing tables,
// columns and indexes.
func Create(ctx context.Context, drv dialect.Driver, opts ...schema.MigrateOption) error {
	m, err := schema.NewMigrate(drv, opts...)
	if err != nil {
		return fmt.Errorf("ent/migrate: %w", err)
	}
	return m.Create(ctx, Tables...)
}
