// Package jira provides a client for the Jira REST APIs, covering the core
// (api) and agile API families:
// https://docs.atlassian.com/jira-software/REST/latest/
//
// Features:
// - Anonymous, basic, bearer, and Atlassian Connect (JWT) authentication.
// - Strongly typed helpers for issues, boards, and search options.
// - Lazy, pull-based iteration over paginated result collections.
package jira
