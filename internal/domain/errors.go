package domain

import "errors"

var (
	ErrBountyNotFound     = errors.New("bounty not found")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrNotMaintainer      = errors.New("only the maintainer may release a bounty")
	ErrInvalidTransition  = errors.New("invalid bounty status transition")
	ErrInvalidAmount      = errors.New("bounty amount must not be negative")
	ErrEmptyIssueText     = errors.New("issue text is empty")
)
