package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type payerItem struct {
	Email   string `dynamodbav:"email,omitempty"`
	Name    string `dynamodbav:"name,omitempty"`
	PayerID string `dynamodbav:"payer_id,omitempty"`
}

type paymentRecordItem struct {
	PaymentID       string     `dynamodbav:"payment_id"`
	ProviderOrderID string     `dynamodbav:"provider_order_id,omitempty"`
	Provider        string     `dynamodbav:"provider"`
	Amount          float64    `dynamodbav:"amount"`
	Currency        string     `dynamodbav:"currency,omitempty"`
	Status          string     `dynamodbav:"status,omitempty"`
	StatusDetail    string     `dynamodbav:"status_detail,omitempty"`
	PaymentMethod   string     `dynamodbav:"payment_method,omitempty"`
	PaymentType     string     `dynamodbav:"payment_type,omitempty"`
	Payer           *payerItem `dynamodbav:"payer,omitempty"`
	UserID          string     `dynamodbav:"user_id,omitempty"`
	Date            string     `dynamodbav:"date"`
}

type userEntitlementItem struct {
	ID           string              `dynamodbav:"id"`
	Email        string              `dynamodbav:"email,omitempty"`
	IsPro        bool                `dynamodbav:"is_pro"`
	ProExpiresAt string              `dynamodbav:"pro_expires_at,omitempty"`
	Payments     []paymentRecordItem `dynamodbav:"payments,omitempty"`
	PaymentIDs   []string            `dynamodbav:"payment_ids,stringset,omitempty"`
}

// UserEntitlementDynamoRepository persists UserEntitlement records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The payments attribute is an append-only list; payment_ids is a string set
// mirroring every identifying id already applied. The conditional UpdateItem
// in AppendPaymentAndActivate is the atomicity boundary for the idempotency
// guarantee: the append, the id-set update and the is_pro flip land in one
// write or not at all.

type UserEntitlementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEntitlementRepository = (*UserEntitlementDynamoRepository)(nil)

func NewUserEntitlementDynamoRepository(ddb *dynamodb.Client) *UserEntitlementDynamoRepository {
	return &UserEntitlementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserEntitlementDynamoRepository) Create(ctx context.Context, u entities.UserEntitlement) (entities.UserEntitlement, error) {
	it := toUserEntitlementItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.UserEntitlement{}, err
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
		return entities.UserEntitlement{}, err
	}
	return u, nil
}

func (r *UserEntitlementDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserEntitlement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserEntitlement{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserEntitlement{}, nil
	}

	var it userEntitlementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserEntitlement{}, err
	}
	return fromUserEntitlementItem(it), nil
}

// AppendPaymentAndActivate applies the entitlement grant in a single
// conditional write. The condition rejects the update when any identifying id
// of p is already in payment_ids; contains() on an absent attribute evaluates
// to false, so a user with no payments yet passes.
func (r *UserEntitlementDynamoRepository) AppendPaymentAndActivate(ctx context.Context, userID string, p entities.PaymentRecord) (entities.UserEntitlement, error) {
	ids := identifyingIDs(p)
	if len(ids) == 0 {
		return entities.UserEntitlement{}, errors.New("payment record has no identifying ids")
	}

	recordItem, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.UserEntitlement{}, err
	}

	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":true":  &types.AttributeValueMemberBOOL{Value: true},
		":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":p":     &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: recordItem}}},
		":ids":   &types.AttributeValueMemberSS{Value: ids},
	}
	for i, id := range ids {
		ref := fmt.Sprintf(":pid%d", i)
		condition += fmt.Sprintf(" AND NOT contains(payment_ids, %s)", ref)
		values[ref] = &types.AttributeValueMemberS{Value: id}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET is_pro = :true, payments = list_append(if_not_exists(payments, :empty), :p) ADD payment_ids :ids REMOVE pro_expires_at"),
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			// The condition also guards user existence; disambiguate so the
			// caller can tell a duplicate from a vanished user.
			existing, getErr := r.GetByID(ctx, userID)
			if getErr == nil && existing.ID == "" {
				return entities.UserEntitlement{}, fmt.Errorf("user %s not found", userID)
			}
			return entities.UserEntitlement{}, interfaces.ErrPaymentAlreadyRecorded
		}
		return entities.UserEntitlement{}, err
	}

	var it userEntitlementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.UserEntitlement{}, err
	}
	return fromUserEntitlementItem(it), nil
}

func identifyingIDs(p entities.PaymentRecord) []string {
	ids := make([]string, 0, 2)
	for _, id := range []string{p.PaymentID, p.ProviderOrderID} {
		id = strings.TrimSpace(id)
		if id == "" || contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	it := paymentRecordItem{
		PaymentID:       p.PaymentID,
		ProviderOrderID: p.ProviderOrderID,
		Provider:        string(p.Provider),
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          p.Status,
		StatusDetail:    p.StatusDetail,
		PaymentMethod:   p.PaymentMethod,
		PaymentType:     p.PaymentType,
		UserID:          p.UserID,
		Date:            p.Date.UTC().Format(time.RFC3339Nano),
	}
	if p.Payer != nil {
		it.Payer = &payerItem{Email: p.Payer.Email, Name: p.Payer.Name, PayerID: p.Payer.PayerID}
	}
	return it
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	p := entities.PaymentRecord{
		PaymentID:       it.PaymentID,
		ProviderOrderID: it.ProviderOrderID,
		Provider:        entities.PaymentProvider(it.Provider),
		Amount:          it.Amount,
		Currency:        it.Currency,
		Status:          it.Status,
		StatusDetail:    it.StatusDetail,
		PaymentMethod:   it.PaymentMethod,
		PaymentType:     it.PaymentType,
		UserID:          it.UserID,
		Date:            dt,
	}
	if it.Payer != nil {
		p.Payer = &entities.Payer{Email: it.Payer.Email, Name: it.Payer.Name, PayerID: it.Payer.PayerID}
	}
	return p
}

func toUserEntitlementItem(u entities.UserEntitlement) userEntitlementItem {
	it := userEntitlementItem{
		ID:    u.ID,
		Email: u.Email,
		IsPro: u.IsPro,
	}
	if u.ProExpiresAt != nil {
		it.ProExpiresAt = u.ProExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	for _, p := range u.Payments {
		it.Payments = append(it.Payments, toPaymentRecordItem(p))
		it.PaymentIDs = append(it.PaymentIDs, identifyingIDs(p)...)
	}
	return it
}

func fromUserEntitlementItem(it userEntitlementItem) entities.UserEntitlement {
	u := entities.UserEntitlement{
		ID:    it.ID,
		Email: it.Email,
		IsPro: it.IsPro,
	}
	if it.ProExpiresAt != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.ProExpiresAt); err == nil {
			u.ProExpiresAt = &dt
		}
	}
	for _, p := range it.Payments {
		u.Payments = append(u.Payments, fromPaymentRecordItem(p))
	}
	return u
}
