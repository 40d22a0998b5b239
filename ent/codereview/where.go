// Code generated by ent, DO NOT EDIT.

package codereview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/frugalops/foreman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldTaskID, v))
}

// ReviewTaskID applies equality check predicate on the "review_task_id" field. It's identical to ReviewTaskIDEQ.
func ReviewTaskID(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldReviewTaskID, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldQualityScore, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSummary, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldModelUsed, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldOutputTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldTaskID, v))
}

// ReviewTaskIDEQ applies the EQ predicate on the "review_task_id" field.
func ReviewTaskIDEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldReviewTaskID, v))
}

// ReviewTaskIDNEQ applies the NEQ predicate on the "review_task_id" field.
func ReviewTaskIDNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldReviewTaskID, v))
}

// ReviewTaskIDIn applies the In predicate on the "review_task_id" field.
func ReviewTaskIDIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldReviewTaskID, vs...))
}

// ReviewTaskIDNotIn applies the NotIn predicate on the "review_task_id" field.
func ReviewTaskIDNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldReviewTaskID, vs...))
}

// ReviewTaskIDGT applies the GT predicate on the "review_task_id" field.
func ReviewTaskIDGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldReviewTaskID, v))
}

// ReviewTaskIDGTE applies the GTE predicate on the "review_task_id" field.
func ReviewTaskIDGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldReviewTaskID, v))
}

// ReviewTaskIDLT applies the LT predicate on the "review_task_id" field.
func ReviewTaskIDLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldReviewTaskID, v))
}

// ReviewTaskIDLTE applies the LTE predicate on the "review_task_id" field.
func ReviewTaskIDLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldReviewTaskID, v))
}

// ReviewTaskIDContains applies the Contains predicate on the "review_task_id" field.
func ReviewTaskIDContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldReviewTaskID, v))
}

// ReviewTaskIDHasPrefix applies the HasPrefix predicate on the "review_task_id" field.
func ReviewTaskIDHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldReviewTaskID, v))
}

// ReviewTaskIDHasSuffix applies the HasSuffix predicate on the "review_task_id" field.
func ReviewTaskIDHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldReviewTaskID, v))
}

// ReviewTaskIDIsNil applies the IsNil predicate on the "review_task_id" field.
func ReviewTaskIDIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldReviewTaskID))
}

// ReviewTaskIDNotNil applies the NotNil predicate on the "review_task_id" field.
func ReviewTaskIDNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldReviewTaskID))
}

// ReviewTaskIDEqualFold applies the EqualFold predicate on the "review_task_id" field.
func ReviewTaskIDEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldReviewTaskID, v))
}

// ReviewTaskIDContainsFold applies the ContainsFold predicate on the "review_task_id" field.
func ReviewTaskIDContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldReviewTaskID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldStatus, vs...))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldQualityScore))
}

// FindingsIsNil applies the IsNil predicate on the "findings" field.
func FindingsIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldFindings))
}

// FindingsNotNil applies the NotNil predicate on the "findings" field.
func FindingsNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldFindings))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldSummary, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldModelUsed, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldOutputTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.NotPredicates(p))
}
