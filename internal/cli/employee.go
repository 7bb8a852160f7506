package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MoroniPereira/TIME-SHEET/internal/model"
	"github.com/MoroniPereira/TIME-SHEET/internal/validate"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employee records",
}

var (
	empDepartment string
	empActiveOnly bool
	empInactive   bool

	empFullName string
	empEmail    string
	empPhone    string
	empDept     string
	empPosition string
	empActive   bool
)

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	Args:  cobra.NoArgs,
	RunE:  runEmployeeList,
}

var employeeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new employee",
	Args:  cobra.NoArgs,
	RunE:  runEmployeeCreate,
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an employee record",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeUpdate,
}

var employeeDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate an employee (records are never hard-deleted)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeDeactivate,
}

var employeeStatusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Toggle an employee's active flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeStatus,
}

func init() {
	employeeListCmd.Flags().StringVar(&empDepartment, "department", "", "filter by department")
	employeeListCmd.Flags().BoolVar(&empActiveOnly, "active", false, "only active employees")
	employeeListCmd.Flags().BoolVar(&empInactive, "inactive", false, "only inactive employees")

	for _, c := range []*cobra.Command{employeeCreateCmd, employeeUpdateCmd} {
		c.Flags().StringVar(&empFullName, "name", "", "full name")
		c.Flags().StringVar(&empEmail, "email", "", "email address")
		c.Flags().StringVar(&empPhone, "phone", "", "phone number")
		c.Flags().StringVar(&empDept, "department", "", "department")
		c.Flags().StringVar(&empPosition, "position", "", "position")
	}
	employeeUpdateCmd.Flags().BoolVar(&empActive, "active", true, "active flag")

	employeeStatusCmd.Flags().BoolVar(&empActive, "active", true, "desired active state")

	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeCreateCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeDeactivateCmd)
	employeeCmd.AddCommand(employeeStatusCmd)
}

func runEmployeeList(cmd *cobra.Command, args []string) error {
	a := newApp()
	if err := a.requireAuth(); err != nil {
		return err
	}

	var (
		list []model.Employee
		err  error
	)
	switch {
	case empDepartment != "":
		list, err = a.employees.ListByDepartment(cmd.Context(), empDepartment)
	case empActiveOnly:
		list, err = a.employees.ListActive(cmd.Context())
	case empInactive:
		list, err = a.employees.ListInactive(cmd.Context())
	default:
		list, err = a.employees.List(cmd.Context())
	}
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("no employees found")
		return nil
	}
	for _, e := range list {
		state := "inactive"
		if e.Status == model.StatusActive {
			state = "active"
		}
		fmt.Printf("%4d  %-30s %-25s %-15s %s\n", e.ID, e.FullName, e.Email, e.Department, state)
	}
	return nil
}

func checkEmployeeFields() validate.Errors {
	errs := validate.Errors{}
	errs.Check(validate.FullName(empFullName), "name", "full name needs at least two words").
		Check(validate.Email(empEmail), "email", "invalid email address")
	if empPhone != "" {
		errs.Check(validate.Phone(empPhone), "phone", "invalid phone number")
	}
	return errs
}

func runEmployeeCreate(cmd *cobra.Command, args []string) error {
	a := newApp()
	if err := a.requireAuth(); err != nil {
		return err
	}
	if errs := checkEmployeeFields(); !errs.Valid() {
		return fieldError(errs)
	}

	created, err := a.employees.Create(cmd.Context(), model.CreateEmployee{
		FullName:   empFullName,
		Phone:      empPhone,
		Email:      empEmail,
		Department: empDept,
		Position:   empPosition,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created employee %d (%s)\n", created.ID, created.FullName)
	return nil
}

func runEmployeeUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a := newApp()
	if err := a.requireAuth(); err != nil {
		return err
	}
	if errs := checkEmployeeFields(); !errs.Valid() {
		return fieldError(errs)
	}

	updated, err := a.employees.Update(cmd.Context(), model.UpdateEmployee{
		ID:         id,
		FullName:   empFullName,
		Phone:      empPhone,
		Email:      empEmail,
		Department: empDept,
		Position:   empPosition,
		Active:     empActive,
	})
	if err != nil {
		return err
	}
	fmt.Printf("updated employee %d (%s)\n", updated.ID, updated.FullName)
	return nil
}

func runEmployeeDeactivate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a := newApp()
	if err := a.requireAuth(); err != nil {
		return err
	}
	if err := a.employees.Deactivate(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("deactivated employee %d\n", id)
	return nil
}

func runEmployeeStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a := newApp()
	if err := a.requireAuth(); err != nil {
		return err
	}
	emp, err := a.employees.ToggleStatus(cmd.Context(), id, empActive)
	if err != nil {
		return err
	}
	fmt.Printf("employee %d status=%d\n", emp.ID, emp.Status)
	return nil
}
