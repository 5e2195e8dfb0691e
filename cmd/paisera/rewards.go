package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
)

func rewardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewards",
		Short: "Show rewards available to you",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			rewards, err := client.AvailableRewards(cmd.Context())
			if err != nil {
				return err
			}

			if len(rewards) == 0 {
				fmt.Println(cli.FormatInfo("No rewards available right now."))
				return nil
			}

			var rows []string
			for _, reward := range rewards {
				rows = append(rows, fmt.Sprintf("%-24s %-10s %s",
					reward.Name, reward.RewardType, reward.Value))
				if reward.Description != "" {
					rows = append(rows, "  "+cli.SubtleStyle.Render(reward.Description))
				}
			}

			fmt.Println(cli.RenderBox(cli.GiftIcon+" Rewards", strings.Join(rows, "\n")))
			return nil
		},
	}
}

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show account and security alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			alerts, err := client.Alerts(cmd.Context())
			if err != nil {
				return err
			}

			if len(alerts) == 0 {
				fmt.Println(cli.FormatSuccess("No alerts. All quiet."))
				return nil
			}

			var rows []string
			for _, alert := range alerts {
				style := cli.InfoStyle
				if alert.Type == "security" {
					style = cli.ErrorStyle
				}
				rows = append(rows, fmt.Sprintf("%s %s  %s",
					style.Render("["+alert.Type+"]"),
					alert.CreatedAt.Format("2006-01-02 15:04"),
					alert.Message,
				))
			}

			fmt.Println(cli.RenderBox(cli.BellIcon+" Alerts", strings.Join(rows, "\n")))
			return nil
		},
	}
}
