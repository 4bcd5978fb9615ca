// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "delays", Type: field.TypeJSON, Nullable: true},
		{Name: "lead_filter", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "inactive"}, Default: "draft"},
		{Name: "scheduled_start", Type: field.TypeTime},
		{Name: "email_count", Type: field.TypeInt, Default: 0},
		{Name: "sent_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_companies_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[14]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "campaigns_users_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_company_id_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[14], CampaignsColumns[5]},
			},
			{
				Name:    "campaign_user_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[15]},
			},
			{
				Name:    "campaign_scheduled_start",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[6]},
			},
			{
				Name:    "campaign_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[12]},
			},
		},
	}
	// CampaignEmailsColumns holds the columns for the "campaign_emails" table.
	CampaignEmailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence_position", Type: field.TypeInt},
		{Name: "subject", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "scheduled", "sent", "failed"}, Default: "pending"},
		{Name: "scheduled_send_at", Type: field.TypeTime},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// CampaignEmailsTable holds the schema information for the "campaign_emails" table.
	CampaignEmailsTable = &schema.Table{
		Name:       "campaign_emails",
		Columns:    CampaignEmailsColumns,
		PrimaryKey: []*schema.Column{CampaignEmailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaign_emails_campaigns_emails",
				Columns:    []*schema.Column{CampaignEmailsColumns[10]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "campaign_emails_leads_campaign_emails",
				Columns:    []*schema.Column{CampaignEmailsColumns[11]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_campaign_emails_dedup",
				Unique:  true,
				Columns: []*schema.Column{CampaignEmailsColumns[10], CampaignEmailsColumns[11], CampaignEmailsColumns[1]},
			},
			{
				Name:    "idx_campaign_emails_due",
				Unique:  false,
				Columns: []*schema.Column{CampaignEmailsColumns[4], CampaignEmailsColumns[5]},
			},
			{
				Name:    "campaignemail_lead_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignEmailsColumns[11]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_slug",
				Unique:  true,
				Columns: []*schema.Column{CompaniesColumns[2]},
			},
			{
				Name:    "company_active",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[3]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "job_title", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "linkedin_url", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"apollo", "linkedin", "website", "referral", "cold_email", "event", "other"}, Default: "other"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "qualified", "contacted", "responded", "converted", "closed", "unqualified"}, Default: "new"},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeInt, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeInt},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_companies_leads",
				Columns:    []*schema.Column{LeadsColumns[19]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_leads_company_email",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[19], LeadsColumns[1]},
			},
			{
				Name:    "idx_leads_company_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[19], LeadsColumns[9], LeadsColumns[15]},
			},
			{
				Name:    "idx_leads_score",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[19], LeadsColumns[11], LeadsColumns[9]},
			},
			{
				Name:    "lead_company_id_source",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[19], LeadsColumns[8]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[17]},
			},
		},
	}
	// LeadStatusHistoriesColumns holds the columns for the "lead_status_histories" table.
	LeadStatusHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "old_status", Type: field.TypeEnum, Enums: []string{"new", "qualified", "contacted", "responded", "converted", "closed", "unqualified"}},
		{Name: "new_status", Type: field.TypeEnum, Enums: []string{"new", "qualified", "contacted", "responded", "converted", "closed", "unqualified"}},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// LeadStatusHistoriesTable holds the schema information for the "lead_status_histories" table.
	LeadStatusHistoriesTable = &schema.Table{
		Name:       "lead_status_histories",
		Columns:    LeadStatusHistoriesColumns,
		PrimaryKey: []*schema.Column{LeadStatusHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_status_histories_leads_status_history",
				Columns:    []*schema.Column{LeadStatusHistoriesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lead_status_histories_users_lead_status_changes",
				Columns:    []*schema.Column{LeadStatusHistoriesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_lead_status_history_lead_time",
				Unique:  false,
				Columns: []*schema.Column{LeadStatusHistoriesColumns[5], LeadStatusHistoriesColumns[4]},
			},
			{
				Name:    "idx_lead_status_history_user",
				Unique:  false,
				Columns: []*schema.Column{LeadStatusHistoriesColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeInt},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_companies_users",
				Columns:    []*schema.Column{UsersColumns[6]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_company_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CampaignsTable,
		CampaignEmailsTable,
		CompaniesTable,
		LeadsTable,
		LeadStatusHistoriesTable,
		UsersTable,
	}
)

func init() {
	CampaignsTable.ForeignKeys[0].RefTable = CompaniesTable
	CampaignsTable.ForeignKeys[1].RefTable = UsersTable
	CampaignEmailsTable.ForeignKeys[0].RefTable = CampaignsTable
	CampaignEmailsTable.ForeignKeys[1].RefTable = LeadsTable
	LeadsTable.ForeignKeys[0].RefTable = CompaniesTable
	LeadStatusHistoriesTable.ForeignKeys[0].RefTable = LeadsTable
	LeadStatusHistoriesTable.ForeignKeys[1].RefTable = UsersTable
	UsersTable.ForeignKeys[0].RefTable = CompaniesTable
}
