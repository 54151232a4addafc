package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/app/services"
	"github.com/bureauchain/diplomachain/internal/bootstrap"
	"github.com/bureauchain/diplomachain/internal/ledger"
	"github.com/bureauchain/diplomachain/internal/pkg/logger"
)

// app is the interactive gateway console: a thin dispatch loop over the
// ledger client and the diploma service.
type app struct {
	client   *ledger.DiplomaClient
	diplomas *services.DiplomaService
	in       *bufio.Scanner
}

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		os.Exit(1)
	}
	defer dbPool.Close()

	conn, err := bootstrap.ConnectLedger(cfg, lgr)
	if err != nil {
		os.Exit(1)
	}
	defer conn.Close()

	deps := bootstrap.BuildDependencies(dbPool, conn, lgr)

	a := &app{
		client:   deps.LedgerClient,
		diplomas: deps.Services.Diplomas,
		in:       bufio.NewScanner(os.Stdin),
	}
	a.run(context.Background())
}

func (a *app) run(ctx context.Context) {
	for {
		fmt.Println("Enter: r to read diploma by ID")
		fmt.Println("       a to read all diplomas")
		fmt.Println("       p to read diploma by nationalID, institution, course, level (i.e. the primary key)")
		fmt.Println("       n to read diploma by the owner's name")
		fmt.Println("       i to read diploma by the owner's national ID")
		fmt.Println("       s to create a single diploma by student ID")
		fmt.Println("       t to create multiple diplomas by date of defence of thesis")
		fmt.Println("       u to update a diploma")
		fmt.Println("       d to delete a diploma")
		fmt.Println("       x to exit")

		switch a.readLine("") {
		case "r":
			a.readDiploma(ctx)
		case "a":
			a.readAllDiplomas(ctx)
		case "p":
			a.readByPrimKey(ctx)
		case "n":
			a.readByName(ctx)
		case "i":
			a.readByNationalID(ctx)
		case "s":
			a.createByStudentID(ctx)
		case "t":
			a.createByDefenceDate(ctx)
		case "u":
			a.updateDiploma(ctx)
		case "d":
			a.deleteDiploma(ctx)
		case "x":
			fmt.Println("Bye")
			return
		}
	}
}

// readLine prompts and returns one trimmed line of input.
func (a *app) readLine(prompt string) string {
	if prompt != "" {
		fmt.Println(prompt)
	}
	if !a.in.Scan() {
		return "x"
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) readDiploma(ctx context.Context) {
	diplomaID := a.readLine("Insert diploma ID:")
	diploma, err := a.client.Read(ctx, diplomaID)
	if err != nil {
		fmt.Println("ERROR reading diploma: " + err.Error())
		return
	}
	printJSON(diploma)
}

func (a *app) readAllDiplomas(ctx context.Context) {
	diplomas, err := a.client.GetAll(ctx)
	if err != nil {
		fmt.Println("ERROR reading diplomas: " + err.Error())
		return
	}
	printJSON(diplomas)
}

func (a *app) readByPrimKey(ctx context.Context) {
	key := models.BusinessKey{
		NationalID:  a.readLine("Insert national ID:"),
		Institution: a.readLine("Insert institution:"),
		Course:      a.readLine("Insert course:"),
		Level:       a.readLine("Insert level:"),
	}
	diplomas, err := a.client.QueryByPrimKey(ctx, key)
	if err != nil {
		fmt.Println("ERROR querying diplomas: " + err.Error())
		return
	}
	printJSON(diplomas)
}

func (a *app) readByName(ctx context.Context) {
	firstName := a.readLine("Insert first name:")
	lastName := a.readLine("Insert last name:")
	diplomas, err := a.client.QueryByName(ctx, firstName, lastName)
	if err != nil {
		fmt.Println("ERROR querying diplomas: " + err.Error())
		return
	}
	printJSON(diplomas)
}

func (a *app) readByNationalID(ctx context.Context) {
	nationalID := a.readLine("Insert national ID:")
	diplomas, err := a.client.QueryByNationalID(ctx, nationalID)
	if err != nil {
		fmt.Println("ERROR querying diplomas: " + err.Error())
		return
	}
	printJSON(diplomas)
}

func (a *app) createByStudentID(ctx context.Context) {
	studentID := a.readLine("Insert student ID:")
	diploma, err := a.diplomas.CreateFromStudent(ctx, studentID)
	if err != nil {
		fmt.Println("ERROR while creating diploma by ID: " + err.Error())
		return
	}
	fmt.Println("Successfully created new diploma " + diploma.DiplomaID)
}

func (a *app) createByDefenceDate(ctx context.Context) {
	date := a.readLine("Insert date in format YYYY-MM-dd:")
	result, err := a.diplomas.CreateAllForDefenceDate(ctx, date)
	if err != nil {
		fmt.Println("ERROR while creating diplomas by date of defence: " + err.Error())
		return
	}
	for _, diploma := range result.Created {
		fmt.Println("Successfully created new diploma " + diploma.DiplomaID)
	}
	for _, failure := range result.Failures {
		fmt.Printf("ERROR for student %s: %s\n", failure.StudentID, failure.Reason)
	}
}

func (a *app) updateDiploma(ctx context.Context) {
	diploma := &models.Diploma{
		DiplomaID:    a.readLine("Insert diplomaID:"),
		NationalID:   a.readLine("Insert nationalID:"),
		FirstName:    a.readLine("Insert firstName:"),
		LastName:     a.readLine("Insert lastName:"),
		DateOfBirth:  a.readLine("Insert dateOfBirth:"),
		PlaceOfBirth: a.readLine("Insert placeOfBirth:"),
		DateOfIssue:  a.readLine("Insert dateOfIssue:"),
		Institution:  a.readLine("Insert institution:"),
		Course:       a.readLine("Insert course:"),
		Level:        a.readLine("Insert level:"),
		Degree:       a.readLine("Insert degree:"),
	}
	if err := a.client.Update(ctx, diploma); err != nil {
		fmt.Println("ERROR while updating diploma: " + err.Error())
		return
	}
	fmt.Println("Update successful")
}

func (a *app) deleteDiploma(ctx context.Context) {
	diplomaID := a.readLine("Insert diploma ID:")
	if err := a.client.Delete(ctx, diplomaID); err != nil {
		fmt.Println("ERROR while deleting diploma: " + err.Error())
		return
	}
	fmt.Println("Delete successful")
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("ERROR encoding result: " + err.Error())
		return
	}
	fmt.Println(string(data))
}
