package repository

import (
	"context"
	"errors"
	"math"

	"insurances/internal/domain/entities"
	"insurances/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	proposalKind          = "proposal"
	proposalsKindIDIndex  = "kind-id-index"
	proposalsQueryPageCap = 100
)

type proposalItem struct {
	ID        string `dynamodbav:"id"`
	Kind      string `dynamodbav:"kind"`
	Name      string `dynamodbav:"name"`
	Amount    string `dynamodbav:"amount"`
	Status    string `dynamodbav:"status"`
	Disabled  bool   `dynamodbav:"disabled"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: kind-id-index (PK: kind, SK: id), used to list proposals in id order
//
// The hiring of a proposal is never stored on the proposal item; it is looked
// up in the hirings table by proposal id.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	hirings   interfaces.IHiringRepository
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client, tableName string, hirings interfaces.IHiringRepository) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName, hirings: hirings}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if p.ID == "" {
		p.ID = newID()
	}
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	p, err := fromProposalItem(it)
	if err != nil {
		return entities.Proposal{}, err
	}
	return r.withHiring(ctx, p)
}

// List walks the kind-id-index in ascending id order until the requested page
// is covered, then slices it out.
func (r *ProposalDynamoRepository) List(ctx context.Context, page entities.Pagination) ([]entities.Proposal, error) {
	skip, take := page.Skip(), page.Take()
	out := make([]entities.Proposal, 0, min(take, proposalsQueryPageCap))
	if take == 0 || page.Unreachable() || skip < 0 || skip > math.MaxInt-take {
		return out, nil
	}

	var (
		items     []map[string]types.AttributeValue
		startKey  map[string]types.AttributeValue
		remaining = skip + take
	)
	for remaining > 0 {
		limit := remaining
		if limit > proposalsQueryPageCap {
			limit = proposalsQueryPageCap
		}
		res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(proposalsKindIDIndex),
			KeyConditionExpression: aws.String("#kind = :kind"),
			ExpressionAttributeNames: map[string]string{
				"#kind": "kind",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":kind": &types.AttributeValueMemberS{Value: proposalKind},
			},
			ScanIndexForward:  aws.Bool(true),
			Limit:             aws.Int32(int32(limit)),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, res.Items...)
		remaining -= len(res.Items)
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}

	if skip >= len(items) {
		return out, nil
	}
	items = items[skip:]
	if len(items) > take {
		items = items[:take]
	}

	for _, raw := range items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		p, err := fromProposalItem(it)
		if err != nil {
			return nil, err
		}
		p, err = r.withHiring(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// UpdateStatus writes the full record. A missing id yields a zero-value Proposal.
func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	expr := "SET #name = :name, #amount = :amount, #status = :status, #disabled = :disabled"
	values := map[string]types.AttributeValue{
		":name":     &types.AttributeValueMemberS{Value: p.Name},
		":amount":   &types.AttributeValueMemberS{Value: p.Amount.String()},
		":status":   &types.AttributeValueMemberS{Value: string(p.Status)},
		":disabled": &types.AttributeValueMemberBOOL{Value: p.Disabled},
	}
	names := map[string]string{
		"#name":     "name",
		"#amount":   "amount",
		"#status":   "status",
		"#disabled": "disabled",
	}
	if p.UpdatedAt != nil {
		expr += ", #updated_at = :updated_at"
		values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(*p.UpdatedAt)}
		names["#updated_at"] = "updated_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	updated, err := fromProposalItem(it)
	if err != nil {
		return entities.Proposal{}, err
	}
	updated.Hiring = p.Hiring
	return updated, nil
}

func (r *ProposalDynamoRepository) withHiring(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if r.hirings == nil {
		return p, nil
	}
	h, err := r.hirings.GetByProposalID(ctx, p.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if h.ID != "" {
		p.Hiring = &h
	}
	return p, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:        p.ID,
		Kind:      proposalKind,
		Name:      p.Name,
		Amount:    p.Amount.String(),
		Status:    string(p.Status),
		Disabled:  p.Disabled,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatOptionalTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) (entities.Proposal, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Proposal{}, err
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.Proposal{}, err
	}
	updatedAt, err := parseOptionalTime(it.UpdatedAt)
	if err != nil {
		return entities.Proposal{}, err
	}
	return entities.Proposal{
		ID:        it.ID,
		Name:      it.Name,
		Amount:    amount,
		Status:    entities.ProposalStatus(it.Status),
		Disabled:  it.Disabled,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
