// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/leadstatushistory"
	"github.com/salesflowhq/salesflow/ent/schema"
	"github.com/salesflowhq/salesflow/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescCompanyID is the schema descriptor for company_id field.
	campaignDescCompanyID := campaignFields[0].Descriptor()
	// campaign.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	campaign.CompanyIDValidator = campaignDescCompanyID.Validators[0].(func(int) error)
	// campaignDescUserID is the schema descriptor for user_id field.
	campaignDescUserID := campaignFields[1].Descriptor()
	// campaign.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	campaign.UserIDValidator = campaignDescUserID.Validators[0].(func(int) error)
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[2].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = func() func(string) error {
		validators := campaignDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// campaignDescScheduledStart is the schema descriptor for scheduled_start field.
	campaignDescScheduledStart := campaignFields[7].Descriptor()
	// campaign.DefaultScheduledStart holds the default value on creation for the scheduled_start field.
	campaign.DefaultScheduledStart = campaignDescScheduledStart.Default.(func() time.Time)
	// campaignDescEmailCount is the schema descriptor for email_count field.
	campaignDescEmailCount := campaignFields[8].Descriptor()
	// campaign.DefaultEmailCount holds the default value on creation for the email_count field.
	campaign.DefaultEmailCount = campaignDescEmailCount.Default.(int)
	// campaign.EmailCountValidator is a validator for the "email_count" field. It is called by the builders before save.
	campaign.EmailCountValidator = campaignDescEmailCount.Validators[0].(func(int) error)
	// campaignDescSentCount is the schema descriptor for sent_count field.
	campaignDescSentCount := campaignFields[9].Descriptor()
	// campaign.DefaultSentCount holds the default value on creation for the sent_count field.
	campaign.DefaultSentCount = campaignDescSentCount.Default.(int)
	// campaign.SentCountValidator is a validator for the "sent_count" field. It is called by the builders before save.
	campaign.SentCountValidator = campaignDescSentCount.Validators[0].(func(int) error)
	// campaignDescFailedCount is the schema descriptor for failed_count field.
	campaignDescFailedCount := campaignFields[10].Descriptor()
	// campaign.DefaultFailedCount holds the default value on creation for the failed_count field.
	campaign.DefaultFailedCount = campaignDescFailedCount.Default.(int)
	// campaign.FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	campaign.FailedCountValidator = campaignDescFailedCount.Validators[0].(func(int) error)
	// campaignDescVersion is the schema descriptor for version field.
	campaignDescVersion := campaignFields[11].Descriptor()
	// campaign.DefaultVersion holds the default value on creation for the version field.
	campaign.DefaultVersion = campaignDescVersion.Default.(int)
	// campaign.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	campaign.VersionValidator = campaignDescVersion.Validators[0].(func(int) error)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[13].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[14].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	campaignemailFields := schema.CampaignEmail{}.Fields()
	_ = campaignemailFields
	// campaignemailDescCampaignID is the schema descriptor for campaign_id field.
	campaignemailDescCampaignID := campaignemailFields[0].Descriptor()
	// campaignemail.CampaignIDValidator is a validator for the "campaign_id" field. It is called by the builders before save.
	campaignemail.CampaignIDValidator = campaignemailDescCampaignID.Validators[0].(func(int) error)
	// campaignemailDescLeadID is the schema descriptor for lead_id field.
	campaignemailDescLeadID := campaignemailFields[1].Descriptor()
	// campaignemail.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	campaignemail.LeadIDValidator = campaignemailDescLeadID.Validators[0].(func(int) error)
	// campaignemailDescSequencePosition is the schema descriptor for sequence_position field.
	campaignemailDescSequencePosition := campaignemailFields[2].Descriptor()
	// campaignemail.SequencePositionValidator is a validator for the "sequence_position" field. It is called by the builders before save.
	campaignemail.SequencePositionValidator = campaignemailDescSequencePosition.Validators[0].(func(int) error)
	// campaignemailDescSubject is the schema descriptor for subject field.
	campaignemailDescSubject := campaignemailFields[3].Descriptor()
	// campaignemail.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	campaignemail.SubjectValidator = campaignemailDescSubject.Validators[0].(func(string) error)
	// campaignemailDescCreatedAt is the schema descriptor for created_at field.
	campaignemailDescCreatedAt := campaignemailFields[9].Descriptor()
	// campaignemail.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaignemail.DefaultCreatedAt = campaignemailDescCreatedAt.Default.(func() time.Time)
	// campaignemailDescUpdatedAt is the schema descriptor for updated_at field.
	campaignemailDescUpdatedAt := campaignemailFields[10].Descriptor()
	// campaignemail.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaignemail.DefaultUpdatedAt = campaignemailDescUpdatedAt.Default.(func() time.Time)
	// campaignemail.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaignemail.UpdateDefaultUpdatedAt = campaignemailDescUpdatedAt.UpdateDefault.(func() time.Time)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[0].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescSlug is the schema descriptor for slug field.
	companyDescSlug := companyFields[1].Descriptor()
	// company.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	company.SlugValidator = companyDescSlug.Validators[0].(func(string) error)
	// companyDescActive is the schema descriptor for active field.
	companyDescActive := companyFields[2].Descriptor()
	// company.DefaultActive holds the default value on creation for the active field.
	company.DefaultActive = companyDescActive.Default.(bool)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[3].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[4].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescCompanyID is the schema descriptor for company_id field.
	leadDescCompanyID := leadFields[0].Descriptor()
	// lead.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	lead.CompanyIDValidator = leadDescCompanyID.Validators[0].(func(int) error)
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[1].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescStatusChangedAt is the schema descriptor for status_changed_at field.
	leadDescStatusChangedAt := leadFields[10].Descriptor()
	// lead.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	lead.DefaultStatusChangedAt = leadDescStatusChangedAt.Default.(func() time.Time)
	// leadDescScore is the schema descriptor for score field.
	leadDescScore := leadFields[11].Descriptor()
	// lead.DefaultScore holds the default value on creation for the score field.
	lead.DefaultScore = leadDescScore.Default.(int)
	// lead.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	lead.ScoreValidator = func() func(int) error {
		validators := leadDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadDescIsDeleted is the schema descriptor for is_deleted field.
	leadDescIsDeleted := leadFields[15].Descriptor()
	// lead.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	lead.DefaultIsDeleted = leadDescIsDeleted.Default.(bool)
	// leadDescVersion is the schema descriptor for version field.
	leadDescVersion := leadFields[16].Descriptor()
	// lead.DefaultVersion holds the default value on creation for the version field.
	lead.DefaultVersion = leadDescVersion.Default.(int)
	// lead.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	lead.VersionValidator = leadDescVersion.Validators[0].(func(int) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[17].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[18].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadstatushistoryFields := schema.LeadStatusHistory{}.Fields()
	_ = leadstatushistoryFields
	// leadstatushistoryDescLeadID is the schema descriptor for lead_id field.
	leadstatushistoryDescLeadID := leadstatushistoryFields[0].Descriptor()
	// leadstatushistory.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	leadstatushistory.LeadIDValidator = leadstatushistoryDescLeadID.Validators[0].(func(int) error)
	// leadstatushistoryDescUserID is the schema descriptor for user_id field.
	leadstatushistoryDescUserID := leadstatushistoryFields[1].Descriptor()
	// leadstatushistory.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	leadstatushistory.UserIDValidator = leadstatushistoryDescUserID.Validators[0].(func(int) error)
	// leadstatushistoryDescReason is the schema descriptor for reason field.
	leadstatushistoryDescReason := leadstatushistoryFields[4].Descriptor()
	// leadstatushistory.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	leadstatushistory.ReasonValidator = leadstatushistoryDescReason.Validators[0].(func(string) error)
	// leadstatushistoryDescCreatedAt is the schema descriptor for created_at field.
	leadstatushistoryDescCreatedAt := leadstatushistoryFields[5].Descriptor()
	// leadstatushistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadstatushistory.DefaultCreatedAt = leadstatushistoryDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCompanyID is the schema descriptor for company_id field.
	userDescCompanyID := userFields[0].Descriptor()
	// user.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	user.CompanyIDValidator = userDescCompanyID.Validators[0].(func(int) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
