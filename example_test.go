package goToken_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goToken "github.com/MrEthical07/goToken"
)

func ExampleCreateToken() {
	token, err := goToken.CreateToken("my-app-secret", map[string]any{"uid": "user-42"}, goToken.Options{
		goToken.OptionExpires: time.Now().Add(time.Hour),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Count(token, "."))
	// Output: 2
}

func ExampleCreateToken_admin() {
	_, err := goToken.CreateToken("my-app-secret", nil, nil)
	fmt.Println(errors.Is(err, goToken.ErrInvalidArgument))

	_, err = goToken.CreateToken("my-app-secret", nil, goToken.Options{goToken.OptionAdmin: true})
	fmt.Println(err)
	// Output:
	// true
	// <nil>
}

func ExampleIssuer() {
	issuer, err := goToken.New().
		WithSecret("my-app-secret").
		WithDefaultTTL(15 * time.Minute).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer issuer.Close()

	if _, err := issuer.Issue(context.Background(), map[string]any{"uid": "user-42"}, nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(issuer.MetricsSnapshot().Counters[goToken.MetricTokenIssued])
	// Output: 1
}
