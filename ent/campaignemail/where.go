// Code generated by ent, DO NOT EDIT.

package campaignemail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/salesflowhq/salesflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldCampaignID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldLeadID, v))
}

// SequencePosition applies equality check predicate on the "sequence_position" field. It's identical to SequencePositionEQ.
func SequencePosition(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldSequencePosition, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldBody, v))
}

// ScheduledSendAt applies equality check predicate on the "scheduled_send_at" field. It's identical to ScheduledSendAtEQ.
func ScheduledSendAt(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldScheduledSendAt, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldSentAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldUpdatedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldCampaignID, vs...))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldLeadID, vs...))
}

// SequencePositionEQ applies the EQ predicate on the "sequence_position" field.
func SequencePositionEQ(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldSequencePosition, v))
}

// SequencePositionNEQ applies the NEQ predicate on the "sequence_position" field.
func SequencePositionNEQ(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldSequencePosition, v))
}

// SequencePositionIn applies the In predicate on the "sequence_position" field.
func SequencePositionIn(vs ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldSequencePosition, vs...))
}

// SequencePositionNotIn applies the NotIn predicate on the "sequence_position" field.
func SequencePositionNotIn(vs ...int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldSequencePosition, vs...))
}

// SequencePositionGT applies the GT predicate on the "sequence_position" field.
func SequencePositionGT(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldSequencePosition, v))
}

// SequencePositionGTE applies the GTE predicate on the "sequence_position" field.
func SequencePositionGTE(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldSequencePosition, v))
}

// SequencePositionLT applies the LT predicate on the "sequence_position" field.
func SequencePositionLT(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldSequencePosition, v))
}

// SequencePositionLTE applies the LTE predicate on the "sequence_position" field.
func SequencePositionLTE(v int) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldSequencePosition, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldContainsFold(FieldBody, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldStatus, vs...))
}

// ScheduledSendAtEQ applies the EQ predicate on the "scheduled_send_at" field.
func ScheduledSendAtEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldScheduledSendAt, v))
}

// ScheduledSendAtNEQ applies the NEQ predicate on the "scheduled_send_at" field.
func ScheduledSendAtNEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldScheduledSendAt, v))
}

// ScheduledSendAtIn applies the In predicate on the "scheduled_send_at" field.
func ScheduledSendAtIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldScheduledSendAt, vs...))
}

// ScheduledSendAtNotIn applies the NotIn predicate on the "scheduled_send_at" field.
func ScheduledSendAtNotIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldScheduledSendAt, vs...))
}

// ScheduledSendAtGT applies the GT predicate on the "scheduled_send_at" field.
func ScheduledSendAtGT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldScheduledSendAt, v))
}

// ScheduledSendAtGTE applies the GTE predicate on the "scheduled_send_at" field.
func ScheduledSendAtGTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldScheduledSendAt, v))
}

// ScheduledSendAtLT applies the LT predicate on the "scheduled_send_at" field.
func ScheduledSendAtLT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldScheduledSendAt, v))
}

// ScheduledSendAtLTE applies the LTE predicate on the "scheduled_send_at" field.
func ScheduledSendAtLTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldScheduledSendAt, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotNull(FieldSentAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.CampaignEmail {
	return predicate.CampaignEmail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.CampaignEmail {
	return predicate.CampaignEmail(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.CampaignEmail {
	return predicate.CampaignEmail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.CampaignEmail {
	return predicate.CampaignEmail(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CampaignEmail) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CampaignEmail) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CampaignEmail) predicate.CampaignEmail {
	return predicate.CampaignEmail(sql.NotPredicates(p))
}
