package repository

import (
	"context"
	"errors"
	"strings"

	"insurances/internal/domain/entities"
	"insurances/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	hiringKind         = "hiring"
	proposalMarkerKind = "proposal_hiring"
	proposalMarkerPfx  = "proposal#"
)

type hiringItem struct {
	ID         string `dynamodbav:"id"`
	Kind       string `dynamodbav:"kind"`
	Name       string `dynamodbav:"name"`
	ProposalID string `dynamodbav:"proposal_id"`
	HiringDate string `dynamodbav:"hiring_date"`
	Approved   bool   `dynamodbav:"approved"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at,omitempty"`
}

// proposalMarkerItem claims a proposal for exactly one hiring.
type proposalMarkerItem struct {
	ID       string `dynamodbav:"id"`
	Kind     string `dynamodbav:"kind"`
	HiringID string `dynamodbav:"hiring_id"`
}

// HiringDynamoRepository persists Hiring entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Each hiring is written together with a marker item keyed
// "proposal#<proposal_id>" in one transaction, both conditioned on
// attribute_not_exists(id). The marker makes proposal_id unique at the storage
// level and gives a strongly consistent lookup by proposal.

type HiringDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHiringRepository = (*HiringDynamoRepository)(nil)

func NewHiringDynamoRepository(ddb *dynamodb.Client, tableName string) *HiringDynamoRepository {
	return &HiringDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HiringDynamoRepository) Create(ctx context.Context, h entities.Hiring) (entities.Hiring, error) {
	if h.ID == "" {
		h.ID = newID()
	}
	hiringAV, err := attributevalue.MarshalMap(toHiringItem(h))
	if err != nil {
		return entities.Hiring{}, err
	}
	markerAV, err := attributevalue.MarshalMap(proposalMarkerItem{
		ID:       proposalMarkerKey(h.ProposalID),
		Kind:     proposalMarkerKind,
		HiringID: h.ID,
	})
	if err != nil {
		return entities.Hiring{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     markerAV,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     hiringAV,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
		},
	})
	if err != nil {
		if isMarkerConflict(err) {
			return entities.Hiring{}, interfaces.ErrHiringAlreadyExists
		}
		return entities.Hiring{}, err
	}
	return h, nil
}

func (r *HiringDynamoRepository) GetByID(ctx context.Context, id string) (entities.Hiring, error) {
	if strings.HasPrefix(id, proposalMarkerPfx) {
		return entities.Hiring{}, nil
	}
	out, err := r.getItem(ctx, id)
	if err != nil || len(out) == 0 {
		return entities.Hiring{}, err
	}

	var it hiringItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Hiring{}, err
	}
	if it.Kind != hiringKind {
		return entities.Hiring{}, nil
	}
	return fromHiringItem(it)
}

func (r *HiringDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Hiring, error) {
	out, err := r.getItem(ctx, proposalMarkerKey(proposalID))
	if err != nil || len(out) == 0 {
		return entities.Hiring{}, err
	}

	var marker proposalMarkerItem
	if err := attributevalue.UnmarshalMap(out, &marker); err != nil {
		return entities.Hiring{}, err
	}
	if marker.HiringID == "" {
		return entities.Hiring{}, nil
	}
	return r.GetByID(ctx, marker.HiringID)
}

func (r *HiringDynamoRepository) getItem(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func proposalMarkerKey(proposalID string) string {
	return proposalMarkerPfx + proposalID
}

// isMarkerConflict reports whether a transaction was cancelled because the
// proposal marker (first transact item) already existed.
func isMarkerConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if len(tce.CancellationReasons) == 0 {
		return false
	}
	return aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed"
}

func toHiringItem(h entities.Hiring) hiringItem {
	return hiringItem{
		ID:         h.ID,
		Kind:       hiringKind,
		Name:       h.Name,
		ProposalID: h.ProposalID,
		HiringDate: formatTime(h.HiringDate),
		Approved:   h.Approved,
		CreatedAt:  formatTime(h.CreatedAt),
		UpdatedAt:  formatOptionalTime(h.UpdatedAt),
	}
}

func fromHiringItem(it hiringItem) (entities.Hiring, error) {
	hiringDate, err := parseTime(it.HiringDate)
	if err != nil {
		return entities.Hiring{}, err
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.Hiring{}, err
	}
	updatedAt, err := parseOptionalTime(it.UpdatedAt)
	if err != nil {
		return entities.Hiring{}, err
	}
	return entities.Hiring{
		ID:         it.ID,
		Name:       it.Name,
		ProposalID: it.ProposalID,
		HiringDate: hiringDate,
		Approved:   it.Approved,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
