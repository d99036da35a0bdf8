package tree

// Sample is the built-in demonstration diagram.
const Sample = `my-project
├── README.md # Project overview
├── src
│   ├── main.py # Entry point
│   └── utils.py # Helper functions
└── tests
    └── test_main.py # Unit tests`
