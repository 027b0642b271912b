package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"payadmin-backend/internal/models"
)

const lotteryPath = "/lottery"

func (c *Client) ListPrizes(ctx context.Context, cred Credential) ([]models.Prize, error) {
	var prizes []models.Prize
	if err := c.Do(ctx, cred, http.MethodGet, lotteryPath+"/prizes", nil, nil, &prizes); err != nil {
		return nil, err
	}
	return prizes, nil
}

func (c *Client) AddPrize(ctx context.Context, cred Credential, in models.PrizeInput) (*models.Prize, error) {
	var prize models.Prize
	if err := c.Do(ctx, cred, http.MethodPost, lotteryPath+"/prizes", nil, in, &prize); err != nil {
		return nil, err
	}
	return &prize, nil
}

func (c *Client) DeletePrize(ctx context.Context, cred Credential, id int64) error {
	return c.Do(ctx, cred, http.MethodDelete, lotteryPath+"/prizes/"+pathID(id), nil, nil, nil)
}

func (c *Client) UserBalance(ctx context.Context, cred Credential, chatID int64) (*models.UserBalance, error) {
	var balance models.UserBalance
	if err := c.Do(ctx, cred, http.MethodGet, lotteryPath+"/balance/"+pathID(chatID), nil, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) AddTickets(ctx context.Context, cred Credential, chatID int64, amount int) error {
	q := url.Values{"amount": {strconv.Itoa(amount)}}
	return c.Do(ctx, cred, http.MethodPost, lotteryPath+"/tickets/"+pathID(chatID), q, nil, nil)
}

func (c *Client) ResetTickets(ctx context.Context, cred Credential, chatID int64) error {
	return c.Do(ctx, cred, http.MethodDelete, lotteryPath+"/tickets/"+pathID(chatID), nil, nil, nil)
}

func (c *Client) ResetBalance(ctx context.Context, cred Credential, chatID int64) error {
	return c.Do(ctx, cred, http.MethodDelete, lotteryPath+"/balance/"+pathID(chatID), nil, nil, nil)
}

// AwardRandomUsers pays amount to randomUsers picked among the first totalUsers.
func (c *Client) AwardRandomUsers(ctx context.Context, cred Credential, award models.RandomAward) error {
	q := url.Values{
		"totalUsers":  {strconv.Itoa(award.TotalUsers)},
		"randomUsers": {strconv.Itoa(award.RandomUsers)},
		"amount":      {strconv.FormatFloat(award.Amount, 'f', -1, 64)},
	}
	return c.Do(ctx, cred, http.MethodPost, lotteryPath+"/award-random-users", q, nil, nil)
}
