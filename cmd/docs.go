package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// The docs command prints the reference texts describing the system the demo
// simulates. None of this is executed anywhere: the contract, schema and
// webhook handler exist only as documentation shown to the user.

const escrowContractDoc = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

import {IERC20} from "@openzeppelin/contracts/token/ERC20/IERC20.sol";
import {ReentrancyGuard} from "@openzeppelin/contracts/utils/ReentrancyGuard.sol";

/// @title BountyEscrow - holds USDC per GitHub issue until release
contract BountyEscrow is ReentrancyGuard {
    enum Status { Open, InProgress, Completed, Cancelled }

    struct Bounty {
        address maintainer;
        address worker;
        uint256 amount;
        Status status;
        string issueUrl;
    }

    IERC20 public immutable usdc;
    uint256 public nextId;
    mapping(uint256 => Bounty) public bounties;

    event BountyCreated(uint256 indexed id, address indexed maintainer, uint256 amount);
    event BountyClaimed(uint256 indexed id, address indexed worker);
    event BountyReleased(uint256 indexed id, address indexed worker, uint256 amount);

    constructor(IERC20 _usdc) {
        usdc = _usdc;
    }

    function createBounty(string calldata issueUrl, uint256 amount) external returns (uint256 id) {
        require(amount > 0, "zero amount");
        id = ++nextId;
        bounties[id] = Bounty(msg.sender, address(0), amount, Status.Open, issueUrl);
        require(usdc.transferFrom(msg.sender, address(this), amount), "deposit failed");
        emit BountyCreated(id, msg.sender, amount);
    }

    function claimBounty(uint256 id) external {
        Bounty storage b = bounties[id];
        require(b.status == Status.Open, "not open");
        b.status = Status.InProgress;
        b.worker = msg.sender;
        emit BountyClaimed(id, msg.sender);
    }

    function releaseBounty(uint256 id) external nonReentrant {
        Bounty storage b = bounties[id];
        require(msg.sender == b.maintainer, "not maintainer");
        require(b.status == Status.InProgress, "not in progress");
        b.status = Status.Completed;
        require(usdc.transfer(b.worker, b.amount), "payout failed");
        emit BountyReleased(id, b.worker, b.amount);
    }
}`

const databaseSchemaDoc = `-- Bounty marketplace schema (Supabase / Postgres)

create table bounties (
    id               bigint generated always as identity primary key,
    github_issue_url text not null,
    title            text not null,
    description      text,
    amount_usdc      numeric(18, 6) not null check (amount_usdc >= 0),
    status           text not null default 'OPEN'
                     check (status in ('OPEN', 'IN_PROGRESS', 'COMPLETED', 'CANCELLED')),
    maintainer_addr  text not null,
    worker_addr      text,
    tags             text[] not null default '{}',
    escrow_tx        text,
    created_at       timestamptz not null default now()
);

create index bounties_status_idx on bounties (status);
create index bounties_created_idx on bounties (created_at desc);

-- workers may only be set while a bounty is claimed
alter table bounties add constraint worker_requires_claim
    check (worker_addr is null or status in ('IN_PROGRESS', 'COMPLETED'));`

const webhookHandlerDoc = `// app/api/webhooks/github/route.ts
// Releases escrow when a PR closing a funded issue is merged.

import { NextRequest, NextResponse } from "next/server";
import { verifySignature } from "@/lib/github";
import { releaseBounty } from "@/lib/escrow";
import { db } from "@/lib/db";

export async function POST(req: NextRequest) {
  const payload = await req.text();
  if (!verifySignature(req.headers.get("x-hub-signature-256"), payload)) {
    return NextResponse.json({ error: "bad signature" }, { status: 401 });
  }

  const event = JSON.parse(payload);
  if (event.action !== "closed" || !event.pull_request?.merged) {
    return NextResponse.json({ ok: true });
  }

  for (const issueUrl of linkedIssues(event.pull_request)) {
    const bounty = await db.bounty.findFirst({
      where: { githubIssueUrl: issueUrl, status: "IN_PROGRESS" },
    });
    if (!bounty) continue;

    const tx = await releaseBounty(bounty.id);
    await db.bounty.update({
      where: { id: bounty.id },
      data: { status: "COMPLETED", escrowTx: tx.hash },
    });
  }

  return NextResponse.json({ ok: true });
}`

func newDocsCmd() *cobra.Command {
	sections := map[string]struct {
		title string
		body  string
	}{
		"contract": {"BountyEscrow.sol (Base smart contract)", escrowContractDoc},
		"schema":   {"Database schema (Supabase)", databaseSchemaDoc},
		"webhook":  {"GitHub webhook handler (Next.js)", webhookHandlerDoc},
	}

	return &cobra.Command{
		Use:       "docs [contract|schema|webhook]",
		Short:     "Print the architecture reference texts",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"contract", "schema", "webhook"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"contract", "schema", "webhook"}
			if len(args) == 1 {
				if _, ok := sections[args[0]]; !ok {
					return fmt.Errorf("unknown docs section %q", args[0])
				}
				names = args
			}

			out := cmd.OutOrStdout()
			for i, name := range names {
				section := sections[name]
				if i > 0 {
					_, _ = fmt.Fprintln(out)
				}
				_, _ = fmt.Fprintf(out, "== %s ==\n\n%s\n", section.title, section.body)
			}

			return nil
		},
	}
}
